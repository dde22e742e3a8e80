package cmd

import (
	"database/sql"
	"fmt"
)

const stepRowsQuery = `
	SELECT s.id, f.file_path, s.line, s.keyword, s.text, f.language
	FROM steps s
	JOIN files f ON s.file_id = f.id`

func queryStepRows(sqlDB *sql.DB) ([]stepRow, error) {
	rows, err := sqlDB.Query(stepRowsQuery + ` ORDER BY f.file_path, s.line`)
	if err != nil {
		return nil, fmt.Errorf("querying steps: %w", err)
	}
	defer rows.Close()

	var results []stepRow
	for rows.Next() {
		var r stepRow
		if err := rows.Scan(&r.id, &r.filePath, &r.line, &r.keyword, &r.text, &r.language); err != nil {
			return nil, fmt.Errorf("scanning row: %w", err)
		}
		results = append(results, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating rows: %w", err)
	}
	return results, nil
}

func queryStepRow(sqlDB *sql.DB, id int64) (stepRow, error) {
	var r stepRow
	err := sqlDB.QueryRow(stepRowsQuery+` WHERE s.id = ?`, id).
		Scan(&r.id, &r.filePath, &r.line, &r.keyword, &r.text, &r.language)
	if err == sql.ErrNoRows {
		return r, fmt.Errorf("step #%d not found", id)
	}
	if err != nil {
		return r, fmt.Errorf("querying step #%d: %w", id, err)
	}
	return r, nil
}
