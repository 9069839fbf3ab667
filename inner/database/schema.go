package database

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// порядок важен: таблицы создаются после тех, на которые ссылаются
var schema = []string{
	`CREATE TABLE IF NOT EXISTS regions (
		id BIGINT PRIMARY KEY GENERATED ALWAYS AS IDENTITY,
		name TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS countries (
		id CHAR(2) PRIMARY KEY,
		name TEXT NOT NULL,
		region_id BIGINT REFERENCES regions(id)
	)`,
	`CREATE TABLE IF NOT EXISTS locations (
		id BIGINT PRIMARY KEY GENERATED ALWAYS AS IDENTITY,
		street_address TEXT,
		postal_code TEXT,
		city TEXT NOT NULL,
		state_province TEXT,
		country_id CHAR(2) REFERENCES countries(id)
	)`,
	`CREATE TABLE IF NOT EXISTS jobs (
		id BIGINT PRIMARY KEY GENERATED ALWAYS AS IDENTITY,
		title TEXT NOT NULL,
		min_salary NUMERIC(10, 2),
		max_salary NUMERIC(10, 2)
	)`,
	`CREATE TABLE IF NOT EXISTS departments (
		id BIGINT PRIMARY KEY GENERATED ALWAYS AS IDENTITY,
		name TEXT NOT NULL UNIQUE,
		manager_id BIGINT,
		location_id BIGINT REFERENCES locations(id)
	)`,
	`CREATE TABLE IF NOT EXISTS employees (
		id BIGINT PRIMARY KEY GENERATED ALWAYS AS IDENTITY,
		first_name TEXT,
		last_name TEXT,
		email TEXT UNIQUE NOT NULL,
		phone_number TEXT,
		hire_date DATE NOT NULL,
		job_id BIGINT NOT NULL REFERENCES jobs(id),
		salary NUMERIC(10, 2),
		commission_pct NUMERIC(3, 2),
		manager_id BIGINT REFERENCES employees(id) ON DELETE SET NULL,
		department_id BIGINT REFERENCES departments(id) ON DELETE SET NULL
	)`,
	`CREATE TABLE IF NOT EXISTS job_history (
		employee_id BIGINT NOT NULL REFERENCES employees(id) ON DELETE CASCADE,
		start_date DATE NOT NULL,
		end_date DATE NOT NULL,
		job_id BIGINT NOT NULL REFERENCES jobs(id),
		department_id BIGINT REFERENCES departments(id),
		PRIMARY KEY (employee_id, start_date)
	)`,
	`CREATE TABLE IF NOT EXISTS users (
		id BIGINT PRIMARY KEY GENERATED ALWAYS AS IDENTITY,
		username TEXT UNIQUE NOT NULL,
		password_hash TEXT NOT NULL,
		role TEXT NOT NULL,
		created_at TIMESTAMPTZ DEFAULT NOW()
	)`,
}

// Migrate создаёт таблицы схемы, если их ещё нет
func Migrate(ctx context.Context, db *sqlx.DB) error {
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("error begin schema transaction: %w", err)
	}
	for _, statement := range schema {
		if _, err = tx.ExecContext(ctx, statement); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("error applying schema: %w", err)
		}
	}
	return tx.Commit()
}
