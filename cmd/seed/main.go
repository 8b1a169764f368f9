package main

import (
	"log"
	"os"

	"attareports/internal/database"
	"attareports/internal/domain"

	"golang.org/x/crypto/bcrypt"
)

type seedItem struct {
	name        string
	description string
}

type seedCategory struct {
	name        string
	description string
	items       []seedItem
}

// Checklist catalog from the printed ATTA Montacargas service-report form.
var inspectionCatalog = []seedCategory{
	{
		name:        "ESTRUCTURAL",
		description: "Inspección de estructura general del montacargas",
		items: []seedItem{
			{"GOLPES DEFORMACIONES", "Revisión de golpes y deformaciones en la estructura"},
			{"SOLDADURA FISURADAS", "Inspección de soldaduras con fisuras"},
			{"TORNILLERÍA COMPLETA Y FIJA", "Verificación de tornillería completa y fija"},
			{"PARTES SUELTAS / FRACTURADAS", "Detección de partes sueltas o fracturadas"},
			{"DELANTERAS", "Inspección de partes delanteras"},
			{"TRASERAS", "Inspección de partes traseras"},
		},
	},
	{
		name:        "RUEDAS",
		description: "Inspección del sistema de ruedas y tracción",
		items: []seedItem{
			{"TRACCIÓN", "Sistema de tracción"},
			{"DIFERENCIAL", "Sistema diferencial"},
			{"CAJA POSTERIOR DIRECCIÓN", "Caja posterior de dirección"},
			{"FRENOS", "Sistema de frenos"},
			{"EXTINTOR", "Extintor de emergencia"},
			{"PALO DE EMERGENCIA", "Palo de emergencia"},
			{"TORRETA", "Sistema de torreta"},
			{"ALARMA DE TRASLADO", "Alarma de traslado"},
			{"SILBATO / CLAXON", "Sistema de silbato/claxon"},
			{"ESPEJO RETROVISIOR", "Espejo retrovisor"},
			{"CONECTORES BATERÍA Y GAS", "Conectores de batería y gas"},
			{"INDICADORES", "Tablero de indicadores"},
		},
	},
	{
		name:        "SEGURIDAD",
		description: "Elementos de seguridad del montacargas",
		items: []seedItem{
			{"EMERGENCIA EN PISO", "Paro de emergencia en piso"},
			{"MANGUERAS", "Estado de mangueras"},
			{"CILINDROS DE ELEVACIÓN", "Cilindros de elevación"},
			{"CILINDROS DE INCLINACIÓN", "Cilindros de inclinación"},
			{"DESPLAZAMIENTO LATERAL", "Sistema de desplazamiento lateral"},
			{"ACCESORIOS", "Accesorios adicionales"},
		},
	},
	{
		name:        "FUNCIONALES",
		description: "Funciones operacionales del montacargas",
		items: []seedItem{
			{"ELEVACIÓN", "Función de elevación"},
			{"INCLINACIÓN", "Función de inclinación"},
			{"DESPLAZAMIENTO LATERAL", "Función de desplazamiento lateral"},
			{"ACCESORIOS", "Funcionamiento de accesorios"},
			{"DIRECCIÓN HIDRÁULICA", "Sistema de dirección hidráulica"},
			{"FRENOS", "Sistema de frenos funcional"},
			{"FONDO DE ESTACIONAMIENTO", "Fondo de estacionamiento"},
			{"FONDO DE 5 HORAS", "Fondo de 5 horas"},
		},
	},
	{
		name:        "FUGAS_DE_ACEITE",
		description: "Detección de fugas en el sistema hidráulico",
		items: []seedItem{
			{"TANQUE HIDRÁULICO", "Fugas en tanque hidráulico"},
			{"BOMBA", "Fugas en bomba"},
			{"VÁLVULAS", "Fugas en válvulas"},
			{"MANGUERAS", "Fugas en mangueras"},
			{"CILINDROS ELEVACIÓN", "Fugas en cilindros de elevación"},
			{"CILINDROS INCLINACIÓN", "Fugas en cilindros de inclinación"},
			{"CILINDROS REACH", "Fugas en cilindros reach"},
			{"ACCESORIOS", "Fugas en accesorios"},
		},
	},
}

var operationPoints = []domain.OperationPointTemplate{
	{
		Name:            "velocidad_avance",
		DisplayName:     "Velocidad de Avance",
		FieldType:       "number",
		ValidationRules: map[string]any{"min": 0, "max": 50, "unit": "km/h"},
		OrderIndex:      1,
		IsActive:        true,
	},
	{
		Name:        "funciones_auxiliares_operando",
		DisplayName: "Funciones Auxiliares Operando",
		FieldType:   "select",
		Options:     []string{"SÍ", "NO", "N/A"},
		OrderIndex:  2,
		IsActive:    true,
	},
	{
		Name:        "paro_emergencia_especificaciones",
		DisplayName: "Paro de Emergencia dentro de Especificaciones",
		FieldType:   "select",
		Options:     []string{"SÍ", "NO", "N/A"},
		OrderIndex:  3,
		IsActive:    true,
	},
	{
		Name:        "sistema",
		DisplayName: "Sistema",
		FieldType:   "text",
		OrderIndex:  4,
		IsActive:    true,
	},
	{
		Name:        "objeto_inspeccion",
		DisplayName: "Objeto de Inspección",
		FieldType:   "text",
		OrderIndex:  5,
		IsActive:    true,
	},
}

func main() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "atta.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := db.AutoMigrate(
		&domain.User{},
		&domain.Client{},
		&domain.Contact{},
		&domain.Equipment{},
		&domain.InspectionCategory{},
		&domain.InspectionItemTemplate{},
		&domain.OperationPointTemplate{},
		&domain.ServiceReport{},
	); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM service_reports")
	db.Exec("DELETE FROM operation_point_templates")
	db.Exec("DELETE FROM inspection_item_templates")
	db.Exec("DELETE FROM inspection_categories")
	db.Exec("DELETE FROM equipment")
	db.Exec("DELETE FROM contacts")
	db.Exec("DELETE FROM clients")
	db.Exec("DELETE FROM users")

	// ================== USERS ==================
	log.Println("Creating users...")

	seedUsers := []struct {
		name     string
		email    string
		password string
		role     domain.UserRole
		position string
	}{
		{"Administrador", "admin@attamontacargas.mx", "admin123", domain.RoleAdmin, "Administración"},
		{"Jefe de Taller", "jefe@attamontacargas.mx", "jefe123", domain.RoleJefe, "Jefe de Taller"},
		{"Carlos Técnico", "carlos@attamontacargas.mx", "operador123", domain.RoleOperador, "Técnico de Servicio"},
	}
	for _, u := range seedUsers {
		hash, _ := bcrypt.GenerateFromPassword([]byte(u.password), bcrypt.DefaultCost)
		db.Create(&domain.User{
			Name:         u.name,
			Email:        u.email,
			PasswordHash: string(hash),
			Role:         u.role,
			Position:     u.position,
			IsActive:     true,
		})
		log.Printf("User created: %s / %s", u.email, u.password)
	}

	// ================== CLIENTS ==================
	log.Println("Creating sample client...")

	client := domain.Client{
		Name:    "Logística del Bajío SA de CV",
		Address: "Av. Industrial 1200, León, Guanajuato",
	}
	db.Create(&client)
	db.Create(&domain.Contact{
		ClientID: client.ID,
		Name:     "Ana Martínez",
		Position: "Jefa de Almacén",
		Phone:    "+52 477 123 4567",
		Email:    "ana.martinez@logisticabajio.mx",
	})

	// ================== EQUIPMENT ==================
	log.Println("Creating sample equipment...")

	db.Create(&domain.Equipment{
		Type:         string(domain.EquipmentCombustion),
		Brand:        "Toyota",
		Model:        "8FGU25",
		SerialNumber: "8FGU25-30567",
	})
	db.Create(&domain.Equipment{
		Type:         string(domain.EquipmentElectrico),
		Brand:        "Yale",
		Model:        "ERP030VT",
		SerialNumber: "A908N01234X",
	})

	// ================== INSPECTION CATALOG ==================
	log.Println("Creating inspection catalog...")

	for i, c := range inspectionCatalog {
		category := domain.InspectionCategory{
			Name:        c.name,
			Description: c.description,
			OrderIndex:  i + 1,
			IsActive:    true,
		}
		db.Create(&category)
		for j, item := range c.items {
			db.Create(&domain.InspectionItemTemplate{
				CategoryID:  category.ID,
				Name:        item.name,
				Description: item.description,
				OrderIndex:  j + 1,
				IsActive:    true,
			})
		}
		log.Printf("Category %s: %d items", c.name, len(c.items))
	}

	for i := range operationPoints {
		db.Create(&operationPoints[i])
	}
	log.Printf("Operation points: %d", len(operationPoints))

	log.Println("Seed completed.")
}
