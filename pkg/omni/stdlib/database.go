package stdlib

import (
	"database/sql"
	"strings"
	"sync"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/omni-lang/omni/pkg/omni/evaluator"
)

// Open database connections, keyed by the integer handle handed back to
// Omni code.
var (
	dbConnectionsMu sync.Mutex
	dbConnections   = make(map[int64]*sql.DB)
	dbNextHandle    int64 = 1
)

// splitDSN maps a DSN like "sqlite:app.db", "postgres://...", or
// "mysql:user@/db" to its driver name and driver-specific DSN.
func splitDSN(dsn string) (driver, rest string) {
	switch {
	case strings.HasPrefix(dsn, "sqlite:"):
		return "sqlite", strings.TrimPrefix(dsn, "sqlite:")
	case strings.HasPrefix(dsn, "postgres:"):
		return "postgres", dsn
	case strings.HasPrefix(dsn, "mysql:"):
		return "mysql", strings.TrimPrefix(dsn, "mysql:")
	default:
		return "sqlite", dsn
	}
}

func (l *Library) registerDatabase() {
	// DB.open(dsn) returns an integer connection handle, or null on failure.
	l.register("DB.open", func(args []evaluator.Value) evaluator.Value {
		driver, dsn := splitDSN(argString(args, 0))
		db, err := sql.Open(driver, dsn)
		if err != nil {
			return evaluator.NULL
		}
		if err := db.Ping(); err != nil {
			db.Close()
			return evaluator.NULL
		}

		dbConnectionsMu.Lock()
		handle := dbNextHandle
		dbNextHandle++
		dbConnections[handle] = db
		dbConnectionsMu.Unlock()

		return &evaluator.Int{Value: handle}
	})

	// DB.query(handle, sql) returns an array of row objects (bare maps keyed
	// by column name), or an empty array on failure.
	l.register("DB.query", func(args []evaluator.Value) evaluator.Value {
		result := &evaluator.Array{}

		db := lookupConnection(argInt(args, 0))
		if db == nil {
			return result
		}

		rows, err := db.Query(argString(args, 1))
		if err != nil {
			return result
		}
		defer rows.Close()

		columns, err := rows.Columns()
		if err != nil {
			return result
		}

		for rows.Next() {
			cells := make([]any, len(columns))
			ptrs := make([]any, len(columns))
			for i := range cells {
				ptrs[i] = &cells[i]
			}
			if err := rows.Scan(ptrs...); err != nil {
				return result
			}

			row := &evaluator.Object{Fields: make(map[string]evaluator.Value, len(columns))}
			for i, col := range columns {
				row.Fields[col] = sqlCellToValue(cells[i])
			}
			result.Elements = append(result.Elements, row)
		}
		return result
	})

	// DB.execute(handle, sql) runs a statement and returns the affected row
	// count, or -1 on failure.
	l.register("DB.execute", func(args []evaluator.Value) evaluator.Value {
		db := lookupConnection(argInt(args, 0))
		if db == nil {
			return &evaluator.Int{Value: -1}
		}
		res, err := db.Exec(argString(args, 1))
		if err != nil {
			return &evaluator.Int{Value: -1}
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return &evaluator.Int{Value: 0}
		}
		return &evaluator.Int{Value: affected}
	})

	l.register("DB.close", func(args []evaluator.Value) evaluator.Value {
		handle := argInt(args, 0)
		dbConnectionsMu.Lock()
		db, ok := dbConnections[handle]
		delete(dbConnections, handle)
		dbConnectionsMu.Unlock()
		if !ok {
			return evaluator.FALSE
		}
		return boolValue(db.Close() == nil)
	})
}

func lookupConnection(handle int64) *sql.DB {
	dbConnectionsMu.Lock()
	defer dbConnectionsMu.Unlock()
	return dbConnections[handle]
}

func sqlCellToValue(cell any) evaluator.Value {
	switch cell := cell.(type) {
	case nil:
		return evaluator.NULL
	case int64:
		return &evaluator.Int{Value: cell}
	case float64:
		return &evaluator.Double{Value: cell}
	case bool:
		return boolValue(cell)
	case string:
		return &evaluator.String{Value: cell}
	case []byte:
		return &evaluator.String{Value: string(cell)}
	default:
		return evaluator.NULL
	}
}
