// Package autocomplete builds Select2-style search endpoints bound to
// GORM models. An endpoint matches a query string against a configured
// set of columns and responds with id/text suggestion pairs.
package autocomplete

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"gorm.io/gorm"

	"github.com/gormbase/gormbase/pkg/middleware"
	"github.com/gormbase/gormbase/pkg/model"
	"github.com/gormbase/gormbase/pkg/strutil"
)

// DefaultPageLimit caps result pages when Options.PageLimit is unset.
const DefaultPageLimit = 10

// Options configures an autocomplete endpoint.
type Options struct {
	// SearchFields are the snake_case columns matched against the
	// query. Defaults to the model's Searchable fields.
	SearchFields []string

	// MinInputLen gates empty queries: when positive, an empty query
	// returns nothing; at zero it lists all records.
	MinInputLen int

	// Match selects contains, prefix or exact matching. Contains by
	// default.
	Match Match

	// PageLimit caps the number of results per page. DefaultPageLimit
	// when unset.
	PageLimit int

	// IDColumn names the column reported as the result id. "id" by
	// default.
	IDColumn string

	// Label renders the text shown for a row. Defaults to the first
	// non-empty search field, falling back to the id column.
	Label func(row map[string]interface{}) string

	// IsAuthenticated gates the endpoint. Defaults to requiring an
	// authenticated subject on the request context.
	IsAuthenticated func(r *http.Request) bool
}

// Result is a single suggestion.
type Result struct {
	ID   interface{} `json:"id"`
	Text string      `json:"text"`
}

// Pagination reports whether another page of results exists.
type Pagination struct {
	More bool `json:"more"`
}

// Response is the endpoint's JSON payload.
type Response struct {
	Results    []Result   `json:"results"`
	Pagination Pagination `json:"pagination"`
}

// Endpoint serves autocomplete queries for one model. It implements
// http.Handler.
type Endpoint struct {
	db     *gorm.DB
	table  string
	fields []string
	opts   Options
}

// New binds an autocomplete endpoint to a model prototype. The prototype
// must name its table; search fields come from opts or the prototype's
// Searchable implementation.
func New(db *gorm.DB, prototype interface{}, opts Options) (*Endpoint, error) {
	if db == nil {
		return nil, fmt.Errorf("autocomplete: nil db")
	}

	named, ok := prototype.(interface{ TableName() string })
	if !ok {
		return nil, fmt.Errorf("autocomplete: prototype %T does not implement TableName", prototype)
	}
	table := named.TableName()
	if err := checkColumn(table); err != nil {
		return nil, err
	}

	fields := opts.SearchFields
	if len(fields) == 0 {
		if searchable, ok := prototype.(model.Searchable); ok {
			fields = searchable.SearchFields()
		}
	}
	if len(fields) == 0 {
		return nil, fmt.Errorf("autocomplete: no search fields for %q", table)
	}
	for _, field := range fields {
		if err := checkColumn(field); err != nil {
			return nil, err
		}
	}

	if opts.IDColumn == "" {
		opts.IDColumn = "id"
	}
	if err := checkColumn(opts.IDColumn); err != nil {
		return nil, err
	}
	if opts.PageLimit <= 0 {
		opts.PageLimit = DefaultPageLimit
	}
	if !opts.Match.IsAMatch() {
		return nil, fmt.Errorf("autocomplete: unknown match mode %d", opts.Match)
	}
	if opts.IsAuthenticated == nil {
		opts.IsAuthenticated = subjectPresent
	}

	return &Endpoint{db: db, table: table, fields: fields, opts: opts}, nil
}

// Must is New, panicking on error. Intended for wiring at startup.
func Must(db *gorm.DB, prototype interface{}, opts Options) *Endpoint {
	e, err := New(db, prototype, opts)
	if err != nil {
		panic(err)
	}
	return e
}

// checkColumn guards the identifiers interpolated into SQL: they have to
// be normalized already and fit PostgreSQL's identifier limit.
func checkColumn(name string) error {
	if name == "" || name != strutil.SnakeCase(name) {
		return fmt.Errorf("autocomplete: column %q is not snake_case", name)
	}
	if len(name) > model.PGIdentifierMaxLen {
		return fmt.Errorf("autocomplete: column %q exceeds %d characters", name, model.PGIdentifierMaxLen)
	}
	return nil
}

func subjectPresent(r *http.Request) bool {
	_, ok := middleware.Subject(r.Context())
	return ok
}

func (e *Endpoint) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if !e.opts.IsAuthenticated(r) {
		respondWithJSON(w, http.StatusOK, emptyResponse())
		return
	}

	q := r.URL.Query().Get("q")
	if q == "" && e.opts.MinInputLen > 0 {
		respondWithJSON(w, http.StatusOK, emptyResponse())
		return
	}

	limit := e.opts.PageLimit
	offset := (page(r) - 1) * limit

	var rows []map[string]interface{}
	err := e.query(q).
		Order(fmt.Sprintf("%q", e.opts.IDColumn)).
		Limit(limit + 1).
		Offset(offset).
		Find(&rows).Error
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "search failed")
		return
	}

	more := len(rows) > limit
	if more {
		rows = rows[:limit]
	}

	results := make([]Result, 0, len(rows))
	for _, row := range rows {
		normalizeRow(row)
		results = append(results, Result{ID: row[e.opts.IDColumn], Text: e.label(row)})
	}

	respondWithJSON(w, http.StatusOK, Response{
		Results:    results,
		Pagination: Pagination{More: more},
	})
}

// query OR-combines an ILIKE predicate per search field. Every column is
// cast to text so jsonb and uuid columns are searchable too.
func (e *Endpoint) query(q string) *gorm.DB {
	tx := e.db.Table(e.table)
	if q == "" {
		return tx
	}

	pattern := e.opts.Match.Pattern(q)
	conds := make([]string, 0, len(e.fields))
	args := make([]interface{}, 0, len(e.fields))
	for _, field := range e.fields {
		conds = append(conds, fmt.Sprintf("CAST(%q AS TEXT) ILIKE ?", field))
		args = append(args, pattern)
	}
	return tx.Where(strings.Join(conds, " OR "), args...)
}

func (e *Endpoint) label(row map[string]interface{}) string {
	if e.opts.Label != nil {
		return e.opts.Label(row)
	}
	for _, field := range e.fields {
		if text := valueText(row[field]); text != "" {
			return text
		}
	}
	return valueText(row[e.opts.IDColumn])
}

func page(r *http.Request) int {
	p := r.URL.Query().Get("page")
	if p == "" {
		return 1
	}
	n, err := strconv.Atoi(p)
	if err != nil || n < 1 {
		return 1
	}
	return n
}

// normalizeRow rewrites driver byte slices as strings so ids and labels
// serialize as JSON text rather than base64.
func normalizeRow(row map[string]interface{}) {
	for k, v := range row {
		if b, ok := v.([]byte); ok {
			row[k] = string(b)
		}
	}
}

func valueText(v interface{}) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case []byte:
		return string(t)
	case fmt.Stringer:
		return t.String()
	default:
		return fmt.Sprintf("%v", t)
	}
}

func emptyResponse() Response {
	return Response{Results: []Result{}}
}
