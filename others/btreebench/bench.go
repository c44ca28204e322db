package main

import (
	"database/sql"
	"flag"
	"fmt"
	"log"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/google/uuid"
	"github.com/mzkit/uuid7"
)

// Insert-throughput comparison between time-ordered UUIDv7 primary keys and
// random UUIDv4 keys on MySQL/InnoDB. Time-ordered keys append to the right
// edge of the clustered index; random keys splice into random pages and
// cause page splits, which this program makes measurable.

const (
	defaultRows  = 50000
	defaultBatch = 500
)

// keyScheme produces primary keys for one of the two tables under test
type keyScheme struct {
	name  string
	table string
	next  func() (string, error)
}

func main() {
	dsn := flag.String("dsn", "root:root@tcp(127.0.0.1:3306)/uuid7_bench?parseTime=true",
		"MySQL DSN (database must exist)")
	rows := flag.Int("rows", defaultRows, "rows to insert per scheme")
	batch := flag.Int("batch", defaultBatch, "rows per transaction")
	flag.Parse()

	db, err := sql.Open("mysql", *dsn)
	if err != nil {
		log.Fatalf("open mysql: %v", err)
	}
	defer db.Close()

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(time.Hour)

	if err := db.Ping(); err != nil {
		log.Fatalf("ping mysql: %v", err)
	}

	gen := uuid7.NewGenerator()
	schemes := []keyScheme{
		{
			name:  "UUIDv7 (time-ordered)",
			table: "bench_v7",
			next: func() (string, error) {
				id, err := gen.New()
				if err != nil {
					return "", err
				}
				return id.String(), nil
			},
		},
		{
			name:  "UUIDv4 (random)",
			table: "bench_v4",
			next: func() (string, error) {
				return uuid.New().String(), nil
			},
		},
	}

	fmt.Printf("=== Primary key ordering benchmark (%d rows, batches of %d) ===\n\n", *rows, *batch)

	for _, s := range schemes {
		if err := recreateTable(db, s.table); err != nil {
			log.Fatalf("recreate %s: %v", s.table, err)
		}

		elapsed, err := insertRows(db, s, *rows, *batch)
		if err != nil {
			log.Fatalf("insert into %s: %v", s.table, err)
		}

		fmt.Printf("%s\n", s.name)
		fmt.Printf("   time:  %s\n", elapsed)
		fmt.Printf("   rate:  %.0f rows/second\n", float64(*rows)/elapsed.Seconds())

		size, err := indexSize(db, s.table)
		if err != nil {
			log.Printf("   index size unavailable: %v", err)
		} else {
			fmt.Printf("   index: %d KB\n", size/1024)
		}
		fmt.Println()
	}

	verifyOrdering(db)
}

func recreateTable(db *sql.DB, table string) error {
	if _, err := db.Exec("DROP TABLE IF EXISTS " + table); err != nil {
		return err
	}
	_, err := db.Exec(`CREATE TABLE ` + table + ` (
		id CHAR(36) NOT NULL PRIMARY KEY,
		payload VARCHAR(64) NOT NULL,
		created_at BIGINT NOT NULL
	) ENGINE=InnoDB`)
	return err
}

func insertRows(db *sql.DB, s keyScheme, rows, batch int) (time.Duration, error) {
	start := time.Now()

	for inserted := 0; inserted < rows; {
		tx, err := db.Begin()
		if err != nil {
			return 0, err
		}

		stmt, err := tx.Prepare("INSERT INTO " + s.table + " (id, payload, created_at) VALUES (?, ?, ?)")
		if err != nil {
			tx.Rollback()
			return 0, err
		}

		n := batch
		if rows-inserted < n {
			n = rows - inserted
		}
		for i := 0; i < n; i++ {
			key, err := s.next()
			if err != nil {
				stmt.Close()
				tx.Rollback()
				return 0, err
			}
			if _, err := stmt.Exec(key, fmt.Sprintf("row-%d", inserted+i), time.Now().UnixMilli()); err != nil {
				stmt.Close()
				tx.Rollback()
				return 0, err
			}
		}

		stmt.Close()
		if err := tx.Commit(); err != nil {
			return 0, err
		}
		inserted += n
	}

	return time.Since(start), nil
}

func indexSize(db *sql.DB, table string) (int64, error) {
	var size sql.NullInt64
	err := db.QueryRow(
		"SELECT index_length + data_length FROM information_schema.tables WHERE table_schema = DATABASE() AND table_name = ?",
		table).Scan(&size)
	if err != nil {
		return 0, err
	}
	return size.Int64, nil
}

// verifyOrdering confirms that PRIMARY KEY order on the v7 table is
// chronological: reading back by id must yield non-decreasing timestamps.
func verifyOrdering(db *sql.DB) {
	fmt.Println("Verifying ORDER BY id == chronological order on bench_v7:")

	rows, err := db.Query("SELECT id FROM bench_v7 ORDER BY id LIMIT 10000")
	if err != nil {
		log.Fatalf("query bench_v7: %v", err)
	}
	defer rows.Close()

	var prev uuid7.ID
	checked := 0
	for rows.Next() {
		var id uuid7.ID
		if err := rows.Scan(&id); err != nil {
			log.Fatalf("scan: %v", err)
		}
		if !prev.IsZero() && id.Timestamp() < prev.Timestamp() {
			log.Fatalf("timestamp regression: %s after %s", id, prev)
		}
		prev = id
		checked++
	}
	if err := rows.Err(); err != nil {
		log.Fatalf("iterate: %v", err)
	}

	fmt.Printf("   %d rows checked, no timestamp regressions\n", checked)
}
