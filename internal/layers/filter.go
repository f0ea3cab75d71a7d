package layers

import (
	"fmt"
	"strings"

	"carto_censal/internal/models"
)

// FilterTodos disables department filtering when passed as depto.
const FilterTodos = "todos"

// Filter is an optional boolean predicate over paraje rows. The zero
// value means "no restriction". User input only ever appears in Args,
// bound by the driver at execution time.
type Filter struct {
	Clause string
	Args   []any
}

func (f Filter) IsZero() bool {
	return f.Clause == ""
}

// ResolveDepartamento turns the depto query value into a predicate
// restricting parajes to governing units whose department name contains
// the input, case-insensitively.
//
//   - "todos" (any casing, trimmed) means no filter
//   - blank input selects nothing rather than everything: ILIKE '%%'
//     would match every department
//   - a name matching no department also selects nothing; that is the
//     intended result, not an error
func ResolveDepartamento(depto string) Filter {
	depto = strings.TrimSpace(depto)
	if strings.EqualFold(depto, FilterTodos) {
		return Filter{}
	}
	if depto == "" {
		return Filter{Clause: "1 = 0"}
	}

	clause := fmt.Sprintf(
		`p.%s IN (SELECT g.%s FROM %s g LEFT JOIN %s d ON g.%s = d.in1 WHERE d.nam ILIKE '%%' || ? || '%%')`,
		colCMU, colCMU,
		models.GobiernoLocal{}.TableName(),
		models.Departamento{}.TableName(),
		colCodDepto,
	)
	return Filter{Clause: clause, Args: []any{depto}}
}
