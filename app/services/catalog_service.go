// Package services provides external service integrations and technical concerns like catalogs and tokens
package services

import (
	"github.com/verdelease/leasing-api/models"
)

// VehicleCatalog exposes the static vehicle catalog to the intake flow and the
// public listing endpoint. The catalog is reference data maintained with the
// marketing site; lookups never touch the database.
type VehicleCatalog interface {
	ByID(id string) (*models.Vehicle, bool)
	List() []models.Vehicle
}

// StaticVehicleCatalog implements VehicleCatalog over an in-memory list.
type StaticVehicleCatalog struct {
	vehicles []models.Vehicle
	byID     map[string]int
}

// NewStaticVehicleCatalog builds a catalog from the given vehicles, or from
// the built-in default list when vehicles is empty.
func NewStaticVehicleCatalog(vehicles []models.Vehicle) *StaticVehicleCatalog {
	if len(vehicles) == 0 {
		vehicles = defaultVehicles
	}
	byID := make(map[string]int, len(vehicles))
	for i, v := range vehicles {
		byID[v.ID] = i
	}
	return &StaticVehicleCatalog{vehicles: vehicles, byID: byID}
}

// ByID returns the vehicle with the given catalog ID.
func (c *StaticVehicleCatalog) ByID(id string) (*models.Vehicle, bool) {
	i, ok := c.byID[id]
	if !ok {
		return nil, false
	}
	v := c.vehicles[i]
	return &v, true
}

// List returns all catalog vehicles.
func (c *StaticVehicleCatalog) List() []models.Vehicle {
	out := make([]models.Vehicle, len(c.vehicles))
	copy(out, c.vehicles)
	return out
}

// defaultVehicles is the published leasing catalog. Electric vehicles carry the
// promotional finance tier; combustion and hybrid models the standard tier.
var defaultVehicles = []models.Vehicle{
	{
		ID:          "audi-q6-e-tron",
		Brand:       "Audi",
		Name:        "Q6 e-tron",
		Price:       70000,
		Description: "SUV eléctrico de lujo con tecnología avanzada y amplio espacio interior.",
		Category:    "SUV Eléctrico",
		Type:        "EV",
		FinanceTier: models.FinanceTierPromo,
		Specs: models.VehicleSpecs{
			Power:        "380 CV",
			Range:        "600 km",
			Acceleration: "5.9s 0-100 km/h",
			Consumption:  "17.4 kWh/100 km",
		},
		Features:  []string{"Tracción Quattro", "MMI Navigation plus", "Audi virtual cockpit"},
		Available: true,
	},
	{
		ID:          "bmw-i4-facelift",
		Brand:       "BMW",
		Name:        "i4 (facelift)",
		Price:       55000,
		Description: "Sedán eléctrico deportivo con mejoras en diseño y rendimiento.",
		Category:    "Sedán Eléctrico",
		Type:        "EV",
		FinanceTier: models.FinanceTierPromo,
		Specs: models.VehicleSpecs{
			Power:        "340 CV",
			Range:        "590 km",
			Acceleration: "5.7s 0-100 km/h",
			Consumption:  "16.5 kWh/100 km",
		},
		Features:  []string{"BMW iDrive 8.0", "Head-Up Display", "Asistente personal inteligente"},
		Available: true,
	},
	{
		ID:          "chevrolet-equinox-ev",
		Brand:       "Chevrolet",
		Name:        "Equinox EV",
		Price:       30000,
		Description: "SUV compacto eléctrico con autonomía competitiva y características modernas.",
		Category:    "SUV Eléctrico",
		Type:        "EV",
		FinanceTier: models.FinanceTierPromo,
		Specs: models.VehicleSpecs{
			Power:        "200 CV",
			Range:        "400 km",
			Acceleration: "8.5s 0-100 km/h",
			Consumption:  "18.0 kWh/100 km",
		},
		Features:  []string{"Pantalla táctil de 10 pulgadas", "Apple CarPlay y Android Auto", "Asistentes de seguridad"},
		Available: true,
	},
	{
		ID:          "citroen-e-c3",
		Brand:       "Citroën",
		Name:        "ë-C3",
		Price:       25000,
		Description: "Hatchback eléctrico urbano con diseño distintivo y eficiencia energética.",
		Category:    "Hatchback Eléctrico",
		Type:        "EV",
		FinanceTier: models.FinanceTierPromo,
		Specs: models.VehicleSpecs{
			Power:        "136 CV",
			Range:        "320 km",
			Acceleration: "9.7s 0-100 km/h",
			Consumption:  "15.0 kWh/100 km",
		},
		Features:  []string{"Suspensión Progressive Hydraulic Cushions", "Mirror Screen", "Asistentes de conducción"},
		Available: true,
	},
	{
		ID:          "cupra-tavascan",
		Brand:       "Cupra",
		Name:        "Tavascan",
		Price:       50000,
		Description: "SUV coupé eléctrico con enfoque deportivo y tecnología de vanguardia.",
		Category:    "SUV Eléctrico",
		Type:        "EV",
		FinanceTier: models.FinanceTierPromo,
		Specs: models.VehicleSpecs{
			Power:        "306 CV",
			Range:        "450 km",
			Acceleration: "6.5s 0-100 km/h",
			Consumption:  "20.0 kWh/100 km",
		},
		Features:  []string{"Pantalla central de 13 pulgadas", "Iluminación ambiental", "Asistentes de seguridad avanzados"},
		Available: true,
	},
	{
		ID:          "dacia-sandero",
		Brand:       "Dacia",
		Name:        "Sandero",
		Price:       15000,
		Description: "Hatchback económico con características básicas y eficiencia en combustible.",
		Category:    "Hatchback",
		Type:        "Gasoline",
		FinanceTier: models.FinanceTierStandard,
		Specs: models.VehicleSpecs{
			Power:       "90 CV",
			Consumption: "5.2 L/100 km",
		},
		Features:  []string{"Sistema multimedia con pantalla táctil", "Aire acondicionado", "Asistencia de frenado de emergencia"},
		Available: true,
	},
	{
		ID:          "fiat-fastback",
		Brand:       "Fiat",
		Name:        "Fastback",
		Price:       20000,
		Description: "SUV coupé compacto con diseño moderno y eficiencia.",
		Category:    "SUV Coupé",
		Type:        "Gasoline",
		FinanceTier: models.FinanceTierStandard,
		Specs: models.VehicleSpecs{
			Power:       "130 CV",
			Consumption: "6.0 L/100 km",
		},
		Features:  []string{"Pantalla multimedia de 8.4 pulgadas", "Control de crucero adaptativo", "Cámara de visión trasera"},
		Available: true,
	},
	{
		ID:          "ford-mustang-mach-e",
		Brand:       "Ford",
		Name:        "Mustang Mach-E",
		Price:       45000,
		Description: "SUV eléctrico inspirado en el icónico Mustang, con alto rendimiento.",
		Category:    "SUV Eléctrico",
		Type:        "EV",
		FinanceTier: models.FinanceTierPromo,
		Specs: models.VehicleSpecs{
			Power:        "258 CV",
			Range:        "440 km",
			Acceleration: "6.1s 0-100 km/h",
			Consumption:  "19.5 kWh/100 km",
		},
		Features:  []string{"Sync 4A", "Ford Co-Pilot360", "Carga rápida DC"},
		Available: true,
	},
	{
		ID:          "mitsubishi-outlander-phev",
		Brand:       "Mitsubishi",
		Name:        "Outlander PHEV",
		Price:       40000,
		Description: "SUV híbrido enchufable con autonomía extendida y espacio familiar.",
		Category:    "SUV Híbrido Enchufable",
		Type:        "Plug-in Hybrid",
		FinanceTier: models.FinanceTierStandard,
		Specs: models.VehicleSpecs{
			Power:         "221 CV",
			ElectricRange: "45 km",
			Consumption:   "1.5 L/100 km (híbrido)",
		},
		Features:  []string{"Modo de conducción eléctrica", "Navegación integrada", "Asientos calefactados"},
		Available: true,
	},
	{
		ID:          "nissan-micra",
		Brand:       "Nissan",
		Name:        "Micra",
		Price:       17000,
		Description: "Hatchback urbano con enfoque en practicidad y bajo consumo.",
		Category:    "Hatchback",
		Type:        "Gasoline",
		FinanceTier: models.FinanceTierStandard,
		Specs: models.VehicleSpecs{
			Power:       "92 CV",
			Consumption: "5.1 L/100 km",
		},
		Features:  []string{"NissanConnect", "Frenada de emergencia inteligente", "Climatizador automático"},
		Available: true,
	},
	{
		ID:          "opel-corsa",
		Brand:       "Opel",
		Name:        "Corsa",
		Price:       20000,
		Description: "Hatchback compacto con características tecnológicas y eficiencia.",
		Category:    "Hatchback",
		Type:        "Gasoline",
		FinanceTier: models.FinanceTierStandard,
		Specs: models.VehicleSpecs{
			Power:       "130 CV",
			Consumption: "5.8 L/100 km",
		},
		Features:  []string{"Pantalla táctil de 7 pulgadas", "Conectividad Bluetooth", "Sensores de aparcamiento"},
		Available: true,
	},
	{
		ID:          "skoda-kamiq",
		Brand:       "Skoda",
		Name:        "Kamiq",
		Price:       23000,
		Description: "SUV urbano compacto con amplio espacio interior y tecnología práctica.",
		Category:    "SUV",
		Type:        "Gasoline",
		FinanceTier: models.FinanceTierStandard,
		Specs: models.VehicleSpecs{
			Power:       "110 CV",
			Consumption: "5.5 L/100 km",
		},
		Features:  []string{"Virtual Cockpit", "SmartLink", "Sensores de aparcamiento traseros"},
		Available: true,
	},
	{
		ID:          "volkswagen-golf",
		Brand:       "Volkswagen",
		Name:        "Golf",
		Price:       23000,
		Description: "Hatchback compacto icónico con rendimiento equilibrado y tecnología.",
		Category:    "Hatchback",
		Type:        "Gasoline",
		FinanceTier: models.FinanceTierStandard,
		Specs: models.VehicleSpecs{
			Power:       "150 CV",
			Consumption: "5.6 L/100 km",
		},
		Features:  []string{"Digital Cockpit", "Asistencia en mantenimiento de carril", "Faros LED"},
		Available: true,
	},
}
