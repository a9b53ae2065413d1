// Package pgtest starts a throwaway PostgreSQL container with the schema
// migrated, and builds fixture aggregates. It is imported by integration
// test suites only.
package pgtest

import (
	"context"
	"fmt"
	"time"

	"okada/internal/adapters/out/postgres"
	"okada/internal/core/domain/model/kernel"
	"okada/internal/core/domain/model/order"
	"okada/internal/core/domain/model/rider"

	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gormpg "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Database is a migrated database running in a container.
type Database struct {
	Container *tcpostgres.PostgresContainer
	DB        *gorm.DB
}

// Start runs postgres:15-alpine and applies the embedded migrations.
func Start(ctx context.Context) (*Database, error) {
	container, err := tcpostgres.Run(ctx,
		"postgres:15-alpine",
		tcpostgres.WithDatabase("testdb"),
		tcpostgres.WithUsername("testuser"),
		tcpostgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		return nil, err
	}

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(gormpg.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	if err = postgres.Migrate(db); err != nil {
		return nil, err
	}

	return &Database{Container: container, DB: db}, nil
}

// Terminate stops the container.
func (d *Database) Terminate(ctx context.Context) error {
	if d == nil || d.Container == nil {
		return nil
	}
	return d.Container.Terminate(ctx)
}

// Truncate empties every table and resets identity sequences.
func (d *Database) Truncate() error {
	return d.DB.Exec(`TRUNCATE TABLE order_edit_history, order_status_history, quality_photos,
		order_items, orders, riders RESTART IDENTITY CASCADE`).Error
}

// SeedRider inserts a rider row directly.
func (d *Database) SeedRider(r *rider.Rider) error {
	return d.DB.Exec(
		`INSERT INTO riders (id, name, phone, rating, completed_deliveries, status) VALUES (?, ?, ?, ?, ?, ?)`,
		r.ID(), r.Name(), r.Phone(), r.Rating(), r.CompletedDeliveries(), string(r.Status()),
	).Error
}

// SeedOrder inserts an order row and its items directly, the way the customer
// app would place it.
func (d *Database) SeedOrder(o *order.Order) error {
	if err := o.Validate(); err != nil {
		return err
	}

	var notes *string
	if n := o.Notes(); n != "" {
		notes = &n
	}

	return d.DB.Transaction(func(tx *gorm.DB) error {
		err := tx.Exec(
			`INSERT INTO orders (id, order_number, customer_id, rider_id, status, delivery_address,
				delivery_lat, delivery_lng, payment_method, payment_status, subtotal, delivery_fee,
				total, notes, version, created_at, updated_at)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			o.ID(), o.Number(), o.CustomerID(), o.RiderID(), o.Status().String(), o.DeliveryAddress(),
			o.DeliveryLat(), o.DeliveryLng(), string(o.PaymentMethod()), string(o.PaymentStatus()),
			o.Subtotal().Minor(), o.DeliveryFee().Minor(), o.Total().Minor(), notes, o.Version(),
			o.CreatedAt(), o.UpdatedAt(),
		).Error
		if err != nil {
			return err
		}

		for _, it := range o.Items() {
			err = tx.Exec(
				`INSERT INTO order_items (order_id, product_id, product_name, quantity, unit_price, total)
				 VALUES (?, ?, ?, ?, ?, ?)`,
				o.ID(), it.ProductID, it.ProductName, it.Quantity, it.UnitPrice.Minor(), it.Total.Minor(),
			).Error
			if err != nil {
				return err
			}
		}
		return nil
	})
}

// NewOrder builds a pending order with two items.
func NewOrder(id int64, address string, placedAt time.Time) (*order.Order, order.StatusTransition, error) {
	subtotal, err := kernel.NewMoney(350000)
	if err != nil {
		return nil, order.StatusTransition{}, err
	}
	fee, err := kernel.NewMoney(50000)
	if err != nil {
		return nil, order.StatusTransition{}, err
	}
	unit, err := kernel.NewMoney(175000)
	if err != nil {
		return nil, order.StatusTransition{}, err
	}

	return order.NewOrder(order.NewOrderParams{
		ID:              id,
		Number:          fmt.Sprintf("OKD-%05d", id),
		CustomerID:      100 + id,
		DeliveryAddress: address,
		PaymentMethod:   order.PaymentMTNMoney,
		Subtotal:        subtotal,
		DeliveryFee:     fee,
		Items: []order.Item{
			{ProductID: 1, ProductName: "Ndolé", Quantity: 1, UnitPrice: unit, Total: unit},
			{ProductID: 2, ProductName: "Poulet DG", Quantity: 1, UnitPrice: unit, Total: unit},
		},
	}, order.SystemActor(), placedAt)
}

// NewRider builds a rider.
func NewRider(id int64, name string, rating int, status rider.Status) (*rider.Rider, error) {
	return rider.RestoreRider(id, name, fmt.Sprintf("+2376%08d", id), rating, int(id)*10, status)
}
