package jsonfile

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"ess-chatbot/internal/employee"
	"ess-chatbot/internal/model"
	pkgLog "ess-chatbot/pkg/log"
)

// Repository serves the employee directory from a static JSON seed file loaded
// once at startup. Read-only afterwards, safe for concurrent use.
type Repository struct {
	l         pkgLog.Logger
	employees []model.Employee
	byID      map[string]int
	byName    map[string]int // lowercased name -> index
}

// Ensure Repository implements the directory interface.
var _ employee.Repository = (*Repository)(nil)

// directoryFile is the seed file schema: {"employees": [...]}.
type directoryFile struct {
	Employees []model.Employee `json:"employees"`
}

// New loads and indexes the directory. A malformed file is a configuration
// error and fails startup.
func New(l pkgLog.Logger, path string) (*Repository, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read employee directory %s: %w", path, err)
	}

	var file directoryFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse employee directory %s: %w", path, err)
	}

	r := &Repository{
		l:         l,
		employees: file.Employees,
		byID:      make(map[string]int, len(file.Employees)),
		byName:    make(map[string]int, len(file.Employees)),
	}

	for i, e := range file.Employees {
		if e.ID == "" || e.Name == "" {
			return nil, fmt.Errorf("employee directory %s: entry #%d is missing employee_id or name", path, i)
		}
		if _, dup := r.byID[e.ID]; dup {
			return nil, fmt.Errorf("employee directory %s: duplicate employee_id %q", path, e.ID)
		}
		r.byID[e.ID] = i
		// First occurrence wins on duplicate names, matching directory order.
		key := strings.ToLower(e.Name)
		if _, taken := r.byName[key]; !taken {
			r.byName[key] = i
		}
	}

	return r, nil
}
