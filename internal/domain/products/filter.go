package products

import (
	"fmt"
	"strings"
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike makes s match literally inside an ILIKE pattern.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

// where builds the shared predicate for the count and page queries. It
// returns the clause (empty or starting with " WHERE ") and its arguments;
// placeholders are numbered from $1.
func (f Filter) where() (string, []any) {
	var (
		conds []string
		args  []any
	)

	if f.Category != "" {
		args = append(args, f.Category)
		conds = append(conds, fmt.Sprintf("c.name = $%d", len(args)))
	}

	if s := strings.TrimSpace(f.Search); s != "" {
		args = append(args, "%"+escapeLike(s)+"%")
		n := len(args)
		conds = append(conds, fmt.Sprintf("(p.name ILIKE $%d OR p.description ILIKE $%d)", n, n))
	}

	if len(conds) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

const productFrom = `
		FROM products p
		LEFT JOIN categories c ON c.id = p.category_id`

const productSelect = `
		SELECT p.id, p.name, p.description, p.price, p.category_id, c.name,
		       p.image_path, p.variants, p.in_stock, p.created_at, p.updated_at`

// countQuery and pageQuery are built from the same predicate so total and
// page always agree on which rows match.
func (f Filter) countQuery() (string, []any) {
	whereSQL, args := f.where()
	return `SELECT COUNT(*)` + productFrom + whereSQL, args
}

func (f Filter) pageQuery() (string, []any) {
	whereSQL, args := f.where()
	limitPos := len(args) + 1
	offsetPos := len(args) + 2

	q := productSelect + productFrom + whereSQL + fmt.Sprintf(`
		ORDER BY p.created_at DESC, p.id DESC
		LIMIT $%d OFFSET $%d`, limitPos, offsetPos)

	args = append(args, f.Limit, f.Offset)
	return q, args
}
