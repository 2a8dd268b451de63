package database

import (
	"database/sql"
	"log"
)

// RunMigrations ejecuta las migraciones necesarias para actualizar el esquema de la base de datos
func RunMigrations(db *sql.DB) error {
	log.Println("Ejecutando migraciones de la base de datos...")

	// Migración para añadir la columna note a la tabla transactions
	// (las primeras versiones del esquema no la tenían)
	addNoteColumnSQL := `ALTER TABLE transactions ADD COLUMN note TEXT;`

	if _, err := db.Exec(addNoteColumnSQL); err != nil {
		log.Printf("Error al añadir columna note: %v", err)
		// No retornamos error porque SQLite da error si la columna ya existe
		// y queremos que la migración continúe
	} else {
		log.Println("Columna note añadida correctamente")
	}

	// Migración para añadir la columna summary a la tabla reports
	addSummaryColumnSQL := `ALTER TABLE reports ADD COLUMN summary TEXT;`

	if _, err := db.Exec(addSummaryColumnSQL); err == nil {
		log.Println("Columna summary añadida correctamente")
	}

	return nil
}
