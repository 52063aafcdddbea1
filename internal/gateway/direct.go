package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"renthub/internal/models/wire_models"
)

// tableSpec gives the direct client typed prototypes for a table so gorm can
// keep using real models (array and jsonb columns included) while the
// gateway contract stays raw JSON.
type tableSpec struct {
	newRecord func() any
	newSlice  func() any
}

var tableRegistry = map[string]tableSpec{
	"products": {
		newRecord: func() any { return &wire_models.Product{} },
		newSlice:  func() any { return &[]wire_models.Product{} },
	},
	"categories": {
		newRecord: func() any { return &wire_models.Category{} },
		newSlice:  func() any { return &[]wire_models.Category{} },
	},
	"tags": {
		newRecord: func() any { return &wire_models.Tag{} },
		newSlice:  func() any { return &[]wire_models.Tag{} },
	},
	"plans": {
		newRecord: func() any { return &wire_models.Plan{} },
		newSlice:  func() any { return &[]wire_models.Plan{} },
	},
	"profiles": {
		newRecord: func() any { return &wire_models.Profile{} },
		newSlice:  func() any { return &[]wire_models.Profile{} },
	},
	"orders": {
		newRecord: func() any { return &wire_models.Order{} },
		newSlice:  func() any { return &[]wire_models.Order{} },
	},
	"feature_flags": {
		newRecord: func() any { return &wire_models.FeatureFlag{} },
		newSlice:  func() any { return &[]wire_models.FeatureFlag{} },
	},
	"custom_fields": {
		newRecord: func() any { return &wire_models.CustomField{} },
		newSlice:  func() any { return &[]wire_models.CustomField{} },
	},
	"settings": {
		newRecord: func() any { return &wire_models.Setting{} },
		newSlice:  func() any { return &[]wire_models.Setting{} },
	},
}

type directClient struct {
	db  *gorm.DB
	log *zap.Logger
}

// NewDirectClient connects straight to the hosted Postgres and migrates the
// table set. Used when POSTGRES_URL is configured.
func NewDirectClient(dsn string, log *zap.Logger) (TableAPI, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, &Error{Kind: KindNetwork, Op: "connect", Err: err}
	}

	if err := db.AutoMigrate(
		&wire_models.Product{},
		&wire_models.Category{},
		&wire_models.Tag{},
		&wire_models.Plan{},
		&wire_models.Profile{},
		&wire_models.Order{},
		&wire_models.FeatureFlag{},
		&wire_models.CustomField{},
		&wire_models.Setting{},
	); err != nil {
		return nil, &Error{Kind: KindUnknown, Op: "migrate", Err: err}
	}

	return &directClient{db: db, log: log}, nil
}

func (c *directClient) Mode() string { return "direct" }

func (c *directClient) spec(op, table string) (tableSpec, error) {
	s, ok := tableRegistry[table]
	if !ok {
		return tableSpec{}, &Error{Kind: KindNotFound, Op: op, Table: table, Message: "unknown table"}
	}
	return s, nil
}

func (c *directClient) Select(ctx context.Context, table string, opts SelectOptions) ([]json.RawMessage, int64, error) {
	spec, err := c.spec("select", table)
	if err != nil {
		return nil, 0, err
	}

	filtered := func() *gorm.DB {
		q := c.db.WithContext(ctx).Table(table)
		for col, val := range opts.Eq {
			q = q.Where(fmt.Sprintf("%s = ?", col), val)
		}
		return q
	}

	var total int64
	if err := filtered().Count(&total).Error; err != nil {
		return nil, 0, c.classify("select", table, err)
	}

	slicePtr := spec.newSlice()
	q := filtered()
	if opts.OrderBy != "" {
		dir := "asc"
		if opts.Desc {
			dir = "desc"
		}
		q = q.Order(fmt.Sprintf("%s %s", opts.OrderBy, dir))
	}
	if opts.Limit > 0 {
		q = q.Limit(opts.Limit)
	}

	if err := q.Find(slicePtr).Error; err != nil {
		return nil, 0, c.classify("select", table, err)
	}

	raw, err := json.Marshal(slicePtr)
	if err != nil {
		return nil, 0, &Error{Kind: KindUnknown, Op: "select", Table: table, Err: err}
	}
	var rows []json.RawMessage
	if err := json.Unmarshal(raw, &rows); err != nil {
		return nil, 0, &Error{Kind: KindUnknown, Op: "select", Table: table, Err: err}
	}

	c.log.Debug("gateway select", zap.String("table", table), zap.Int("rows", len(rows)))
	return rows, total, nil
}

func (c *directClient) Insert(ctx context.Context, table string, row json.RawMessage) (json.RawMessage, error) {
	spec, err := c.spec("insert", table)
	if err != nil {
		return nil, err
	}

	rec := spec.newRecord()
	if err := json.Unmarshal(row, rec); err != nil {
		return nil, &Error{Kind: KindUnknown, Op: "insert", Table: table, Err: err}
	}
	if err := c.db.WithContext(ctx).Create(rec).Error; err != nil {
		return nil, c.classify("insert", table, err)
	}
	return marshalRow("insert", table, rec)
}

func (c *directClient) Update(ctx context.Context, table string, id int64, row json.RawMessage) (json.RawMessage, error) {
	spec, err := c.spec("update", table)
	if err != nil {
		return nil, err
	}

	// Merge the payload over the loaded row rather than saving a fresh
	// record: Save writes every column, and fields absent from the payload
	// (created_at travels with omitempty) must keep their stored values.
	// This also matches the REST backend's PATCH semantics.
	existing := spec.newRecord()
	if err := c.db.WithContext(ctx).First(existing, "id = ?", id).Error; err != nil {
		return nil, c.classify("update", table, err)
	}

	if err := json.Unmarshal(row, existing); err != nil {
		return nil, &Error{Kind: KindUnknown, Op: "update", Table: table, Err: err}
	}
	if err := c.db.WithContext(ctx).Save(existing).Error; err != nil {
		return nil, c.classify("update", table, err)
	}
	return marshalRow("update", table, existing)
}

func (c *directClient) Delete(ctx context.Context, table string, id int64) error {
	spec, err := c.spec("delete", table)
	if err != nil {
		return err
	}

	res := c.db.WithContext(ctx).Delete(spec.newRecord(), "id = ?", id)
	if res.Error != nil {
		return c.classify("delete", table, res.Error)
	}
	if res.RowsAffected == 0 {
		return &Error{Kind: KindNotFound, Op: "delete", Table: table, Message: "no such row"}
	}
	return nil
}

func (c *directClient) Ping(ctx context.Context) error {
	sqlDB, err := c.db.DB()
	if err != nil {
		return &Error{Kind: KindUnknown, Op: "ping", Err: err}
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return &Error{Kind: KindNetwork, Op: "ping", Err: err}
	}
	return nil
}

func (c *directClient) classify(op, table string, err error) error {
	kind := KindUnknown

	var pgErr *pgconn.PgError
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		kind = KindNotFound
	case errors.As(err, &pgErr):
		switch pgErr.Code {
		case "23503", "23505":
			kind = KindConflict
		case "42501":
			kind = KindForbidden
		case "42P01":
			kind = KindNotFound
		}
	}

	c.log.Warn("gateway call failed",
		zap.String("op", op),
		zap.String("table", table),
		zap.String("kind", kind.String()),
		zap.Error(err),
	)
	return &Error{Kind: kind, Op: op, Table: table, Err: err}
}

func marshalRow(op, table string, rec any) (json.RawMessage, error) {
	raw, err := json.Marshal(rec)
	if err != nil {
		return nil, &Error{Kind: KindUnknown, Op: op, Table: table, Err: err}
	}
	return raw, nil
}
