package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"vos-erp-service/internal/domain/lookup"

	"github.com/jackc/pgx/v5/pgxpool"
)

// optionSpec names the table and columns an enumerated lookup resource reads.
// The registry below is the only place table or column names appear: queries
// are assembled from these compile-time constants, never from request input,
// so an "unknown table" failure cannot happen at runtime.
type optionSpec struct {
	table       string
	idColumn    string
	nameColumn  string
	subtitleCol string // optional
}

var lookupRegistry = map[lookup.Resource]optionSpec{
	lookup.ResourceUnits:      {table: "units", idColumn: "unit_id", nameColumn: "unit_name", subtitleCol: "unit_shortcut"},
	lookup.ResourceBrand:      {table: "brand", idColumn: "brand_id", nameColumn: "brand_name"},
	lookup.ResourceCategories: {table: "categories", idColumn: "category_id", nameColumn: "category_name"},
	lookup.ResourceSegment:    {table: "segment", idColumn: "segment_id", nameColumn: "segment_name"},
	lookup.ResourceSections:   {table: "sections", idColumn: "section_id", nameColumn: "section_name"},
	lookup.ResourceBranches:   {table: "branches", idColumn: "branch_id", nameColumn: "branch_name", subtitleCol: "branch_code"},
	lookup.ResourceCompany:    {table: "company", idColumn: "company_id", nameColumn: "company_name", subtitleCol: "company_code"},
	lookup.ResourceDivision:   {table: "division", idColumn: "division_id", nameColumn: "division_name"},
	lookup.ResourceSuppliers:  {table: "suppliers", idColumn: "id", nameColumn: "supplier_name"},
	lookup.ResourceOperation:  {table: "operation", idColumn: "id", nameColumn: "name", subtitleCol: "code"},
	lookup.ResourcePriceTypes: {table: "price_types", idColumn: "price_type_id", nameColumn: "price_type_name", subtitleCol: "code"},
}

type LookupRepository struct {
	db *pgxpool.Pool
}

func NewLookupRepository(db *pgxpool.Pool) *LookupRepository {
	return &LookupRepository{db: db}
}

const lookupLimit = 20

// Options returns up to 20 dropdown options for a resource, ordered by name,
// optionally filtered by a case-insensitive name substring.
func (r *LookupRepository) Options(ctx context.Context, res lookup.Resource, q string) ([]lookup.Option, error) {
	spec, ok := lookupRegistry[res]
	if !ok {
		// Resource parsed but not registered; treat as empty rather than 500.
		return []lookup.Option{}, nil
	}

	subtitle := "NULL"
	if spec.subtitleCol != "" {
		subtitle = spec.subtitleCol
	}

	query := fmt.Sprintf(`SELECT %s, %s, %s FROM %s`, spec.idColumn, spec.nameColumn, subtitle, spec.table)
	args := []interface{}{}

	if q != "" {
		query += fmt.Sprintf(` WHERE %s ILIKE $1`, spec.nameColumn)
		args = append(args, "%"+q+"%")
	}
	query += fmt.Sprintf(` ORDER BY %s LIMIT %d`, spec.nameColumn, lookupLimit)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s options: %w", spec.table, err)
	}
	defer rows.Close()

	options := []lookup.Option{}
	for rows.Next() {
		var opt lookup.Option
		var sub sql.NullString
		if err := rows.Scan(&opt.ID, &opt.Name, &sub); err != nil {
			return nil, fmt.Errorf("failed to scan %s option: %w", spec.table, err)
		}
		if sub.Valid {
			opt.Subtitle = sub.String
		}
		options = append(options, opt)
	}
	return options, rows.Err()
}
