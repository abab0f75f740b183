package mysql

import (
	"context"

	"food-order-service/internal/domain"
	"food-order-service/internal/repository"

	mysqldriver "github.com/go-sql-driver/mysql"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const errDuplicateEntry = 1062

type orderRepo struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepo{db: db}
}

func (r *orderRepo) FindByID(ctx context.Context, id string) (*domain.Order, error) {
	var o domain.Order
	if err := r.db.WithContext(ctx).Where("order_id = ?", id).First(&o).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		log.WithError(err).WithField("order_id", id).Error("find order by id")
		return nil, errors.Wrap(err, "find order by id")
	}
	return &o, nil
}

func (r *orderRepo) ExistsByID(ctx context.Context, id string) (bool, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&domain.Order{}).Where("order_id = ?", id).Count(&n).Error; err != nil {
		return false, errors.Wrap(err, "check order exists")
	}
	return n > 0, nil
}

func (r *orderRepo) FindAll(ctx context.Context) ([]domain.Order, error) {
	return r.find(ctx, "find all orders", r.db)
}

func (r *orderRepo) Create(ctx context.Context, order *domain.Order) error {
	if err := r.db.WithContext(ctx).Create(order).Error; err != nil {
		var myErr *mysqldriver.MySQLError
		if errors.As(err, &myErr) && myErr.Number == errDuplicateEntry {
			return repository.ErrDuplicateID
		}
		log.WithError(err).WithField("order_id", order.OrderID).Error("create order")
		return errors.Wrap(err, "create order")
	}
	return nil
}

// Save writes every column of the order, replacing the stored row.
func (r *orderRepo) Save(ctx context.Context, order *domain.Order) error {
	if err := r.db.WithContext(ctx).Save(order).Error; err != nil {
		log.WithError(err).WithField("order_id", order.OrderID).Error("save order")
		return errors.Wrap(err, "save order")
	}
	return nil
}

func (r *orderRepo) DeleteByID(ctx context.Context, id string) error {
	if err := r.db.WithContext(ctx).Where("order_id = ?", id).Delete(&domain.Order{}).Error; err != nil {
		log.WithError(err).WithField("order_id", id).Error("delete order")
		return errors.Wrap(err, "delete order")
	}
	return nil
}

func (r *orderRepo) CountByVendor(ctx context.Context, vendorID string) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&domain.Order{}).Where("vendor_id = ?", vendorID).Count(&n).Error; err != nil {
		return 0, errors.Wrap(err, "count orders by vendor")
	}
	return n, nil
}

func (r *orderRepo) FindByVendor(ctx context.Context, vendorID string) ([]domain.Order, error) {
	return r.find(ctx, "find orders by vendor", r.db.Where("vendor_id = ?", vendorID))
}

func (r *orderRepo) FindByVendorAndCustomer(ctx context.Context, vendorID, customerID string) ([]domain.Order, error) {
	q := r.db.Where("vendor_id = ? AND customer_id = ?", vendorID, customerID)
	return r.find(ctx, "find orders by vendor and customer", q)
}

func (r *orderRepo) FindByCustomer(ctx context.Context, customerID string) ([]domain.Order, error) {
	return r.find(ctx, "find orders by customer", r.db.Where("customer_id = ?", customerID))
}

// DishOccurrenceRanking folds the vendor's dish lists in scan order, then loads the
// ranked dishes the vendor owns. Dishes no longer in the catalog are skipped.
func (r *orderRepo) DishOccurrenceRanking(ctx context.Context, vendorID string) ([]domain.Dish, error) {
	orders, err := r.FindByVendor(ctx, vendorID)
	if err != nil {
		return nil, err
	}
	ranked := domain.RankDishIDs(orders)
	if len(ranked) == 0 {
		return []domain.Dish{}, nil
	}

	var dishes []domain.Dish
	err = r.db.WithContext(ctx).
		Where("id IN ? AND vendor_id = ?", ranked, vendorID).
		Find(&dishes).Error
	if err != nil {
		log.WithError(err).WithField("vendor_id", vendorID).Error("load ranked dishes")
		return nil, errors.Wrap(err, "load ranked dishes")
	}

	return orderByRank(ranked, dishes, vendorID), nil
}

// orderByRank returns the vendor's dishes in ranked order. Ids with no matching
// dish, or owned by another vendor, are skipped.
func orderByRank(ranked []uint64, dishes []domain.Dish, vendorID string) []domain.Dish {
	byID := make(map[uint64]domain.Dish, len(dishes))
	for _, d := range dishes {
		if d.VendorID == vendorID {
			byID[d.ID] = d
		}
	}
	out := make([]domain.Dish, 0, len(byID))
	for _, id := range ranked {
		if d, ok := byID[id]; ok {
			out = append(out, d)
		}
	}
	return out
}

func (r *orderRepo) find(ctx context.Context, op string, q *gorm.DB) ([]domain.Order, error) {
	out := []domain.Order{}
	if err := q.WithContext(ctx).Order("created_at ASC, order_id ASC").Find(&out).Error; err != nil {
		log.WithError(err).Error(op)
		return nil, errors.Wrap(err, op)
	}
	return out, nil
}
