package database

import (
	"database/sql"
	"errors"
	"fmt"
	"log"

	"github.com/Sampreeth-sv/smart-attendance-new/models"
)

var ErrCatalogUnavailable = errors.New("student catalog not connected")

// LookupStudent resolves a student's catalog entry by USN.
func LookupStudent(usn string) (models.CatalogStudent, error) {
	DBMutex.Lock()
	defer DBMutex.Unlock()

	var s models.CatalogStudent
	if DB == nil {
		return s, ErrCatalogUnavailable
	}
	row := DB.QueryRow("SELECT usn, prn, name FROM students WHERE usn = ?", usn)
	if err := row.Scan(&s.USN, &s.PRN, &s.Name); err != nil {
		return s, err
	}
	return s, nil
}

// StudentsInClass lists the catalog entries for one class table.
func StudentsInClass(classTableName string) (students []models.CatalogStudent, err error) {
	DBMutex.Lock()
	defer DBMutex.Unlock()

	if DB == nil {
		return nil, ErrCatalogUnavailable
	}
	var rows *sql.Rows
	rows, err = DB.Query(fmt.Sprintf("SELECT usn, prn, name FROM %s", classTableName))
	if err != nil {
		log.Println("Failed to query students in class:", err)
		return
	}
	defer rows.Close()

	for rows.Next() {
		var s models.CatalogStudent
		err = rows.Scan(&s.USN, &s.PRN, &s.Name)
		if err != nil {
			log.Println("Failed to scan student:", err)
			return
		}
		students = append(students, s)
	}
	return
}
