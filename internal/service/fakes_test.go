package service_test

import (
	"fmt"
	"sort"

	"go-stockroom/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// In-memory repository fakes for service tests. They mirror the
// behavior the GORM-backed repositories provide, including returning
// gorm.ErrRecordNotFound for missing rows.

type fakeProductRepo struct {
	products map[uuid.UUID]*model.Product
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: map[uuid.UUID]*model.Product{}}
}

func (r *fakeProductRepo) Create(p *model.Product) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	cp := *p
	r.products[p.ID] = &cp
	return nil
}

func (r *fakeProductRepo) FindAll(page, pageSize int) ([]model.Product, int64, error) {
	all := make([]model.Product, 0, len(r.products))
	for _, p := range r.products {
		all = append(all, *p)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Name < all[j].Name })
	return paginate(all, page, pageSize), int64(len(all)), nil
}

func (r *fakeProductRepo) FindByID(id uuid.UUID) (*model.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProductRepo) FindBySKU(sku string) (*model.Product, error) {
	for _, p := range r.products {
		if p.SKU == sku {
			cp := *p
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeProductRepo) FindLowStock() ([]model.Product, error) {
	var out []model.Product
	for _, p := range r.products {
		if p.IsActive && p.IsLowStock() {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *fakeProductRepo) Update(p *model.Product) error {
	cp := *p
	r.products[p.ID] = &cp
	return nil
}

func (r *fakeProductRepo) Delete(id uuid.UUID) error {
	delete(r.products, id)
	return nil
}

func (r *fakeProductRepo) CountByCategory(categoryID uuid.UUID) (int64, error) {
	var count int64
	for _, p := range r.products {
		if p.CategoryID != nil && *p.CategoryID == categoryID {
			count++
		}
	}
	return count, nil
}

type fakeCategoryRepo struct {
	categories map[uuid.UUID]*model.Category
}

func newFakeCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{categories: map[uuid.UUID]*model.Category{}}
}

func (r *fakeCategoryRepo) Create(c *model.Category) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	cp := *c
	r.categories[c.ID] = &cp
	return nil
}

func (r *fakeCategoryRepo) FindAll(page, pageSize int) ([]model.Category, int64, error) {
	all := make([]model.Category, 0, len(r.categories))
	for _, c := range r.categories {
		all = append(all, *c)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Name < all[j].Name })
	return paginate(all, page, pageSize), int64(len(all)), nil
}

func (r *fakeCategoryRepo) FindByID(id uuid.UUID) (*model.Category, error) {
	c, ok := r.categories[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *c
	return &cp, nil
}

func (r *fakeCategoryRepo) FindByName(name string) (*model.Category, error) {
	for _, c := range r.categories {
		if c.Name == name {
			cp := *c
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeCategoryRepo) Update(c *model.Category) error {
	cp := *c
	r.categories[c.ID] = &cp
	return nil
}

func (r *fakeCategoryRepo) Delete(id uuid.UUID) error {
	delete(r.categories, id)
	return nil
}

type fakeCustomerRepo struct {
	customers map[uuid.UUID]*model.Customer
}

func newFakeCustomerRepo() *fakeCustomerRepo {
	return &fakeCustomerRepo{customers: map[uuid.UUID]*model.Customer{}}
}

func (r *fakeCustomerRepo) Create(c *model.Customer) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	cp := *c
	r.customers[c.ID] = &cp
	return nil
}

func (r *fakeCustomerRepo) FindAll(page, pageSize int) ([]model.Customer, int64, error) {
	all := make([]model.Customer, 0, len(r.customers))
	for _, c := range r.customers {
		all = append(all, *c)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Name < all[j].Name })
	return paginate(all, page, pageSize), int64(len(all)), nil
}

func (r *fakeCustomerRepo) FindByID(id uuid.UUID) (*model.Customer, error) {
	c, ok := r.customers[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *c
	return &cp, nil
}

func (r *fakeCustomerRepo) FindByEmail(email string) (*model.Customer, error) {
	for _, c := range r.customers {
		if c.Email == email {
			cp := *c
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeCustomerRepo) Update(c *model.Customer) error {
	cp := *c
	r.customers[c.ID] = &cp
	return nil
}

func (r *fakeCustomerRepo) Delete(id uuid.UUID) error {
	delete(r.customers, id)
	return nil
}

type fakeSupplierRepo struct {
	suppliers map[uuid.UUID]*model.Supplier
}

func newFakeSupplierRepo() *fakeSupplierRepo {
	return &fakeSupplierRepo{suppliers: map[uuid.UUID]*model.Supplier{}}
}

func (r *fakeSupplierRepo) Create(s *model.Supplier) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	cp := *s
	r.suppliers[s.ID] = &cp
	return nil
}

func (r *fakeSupplierRepo) FindAll(page, pageSize int) ([]model.Supplier, int64, error) {
	all := make([]model.Supplier, 0, len(r.suppliers))
	for _, s := range r.suppliers {
		all = append(all, *s)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Name < all[j].Name })
	return paginate(all, page, pageSize), int64(len(all)), nil
}

func (r *fakeSupplierRepo) FindByID(id uuid.UUID) (*model.Supplier, error) {
	s, ok := r.suppliers[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *s
	return &cp, nil
}

func (r *fakeSupplierRepo) FindByEmail(email string) (*model.Supplier, error) {
	for _, s := range r.suppliers {
		if s.Email == email {
			cp := *s
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeSupplierRepo) Update(s *model.Supplier) error {
	cp := *s
	r.suppliers[s.ID] = &cp
	return nil
}

func (r *fakeSupplierRepo) Delete(id uuid.UUID) error {
	delete(r.suppliers, id)
	return nil
}

// fakeOrderRepo mimics the transactional repository: numbers come from
// a per-(type, year) counter, Replace swaps the item set wholesale.
type fakeOrderRepo struct {
	orders    map[uuid.UUID]*model.Order
	sequences map[string]int
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{
		orders:    map[uuid.UUID]*model.Order{},
		sequences: map[string]int{},
	}
}

func seqKey(t model.OrderType, year int) string {
	return fmt.Sprintf("%s-%d", t, year)
}

func (r *fakeOrderRepo) Create(order *model.Order) error {
	year := order.OrderDate.Year()
	key := seqKey(order.Type, year)
	r.sequences[key]++
	order.OrderNumber = model.FormatOrderNumber(order.Type, year, r.sequences[key])
	if order.ID == uuid.Nil {
		order.ID = uuid.New()
	}
	for i := range order.Items {
		if order.Items[i].ID == uuid.Nil {
			order.Items[i].ID = uuid.New()
		}
		order.Items[i].OrderID = order.ID
	}
	cp := *order
	cp.Items = append([]model.OrderItem(nil), order.Items...)
	r.orders[order.ID] = &cp
	return nil
}

func (r *fakeOrderRepo) Replace(order *model.Order, items []model.OrderItem) error {
	if _, ok := r.orders[order.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	for i := range items {
		if items[i].ID == uuid.Nil {
			items[i].ID = uuid.New()
		}
		items[i].OrderID = order.ID
	}
	order.Items = items
	cp := *order
	cp.Items = append([]model.OrderItem(nil), items...)
	r.orders[order.ID] = &cp
	return nil
}

func (r *fakeOrderRepo) Delete(id uuid.UUID) error {
	delete(r.orders, id)
	return nil
}

func (r *fakeOrderRepo) FindByID(id uuid.UUID) (*model.Order, error) {
	o, ok := r.orders[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *o
	cp.Items = append([]model.OrderItem(nil), o.Items...)
	return &cp, nil
}

func (r *fakeOrderRepo) FindAll(orderType, status string, page, pageSize int) ([]model.Order, int64, error) {
	var all []model.Order
	for _, o := range r.orders {
		if orderType != "" && string(o.Type) != orderType {
			continue
		}
		if status != "" && string(o.Status) != status {
			continue
		}
		all = append(all, *o)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].OrderNumber > all[j].OrderNumber })
	return paginate(all, page, pageSize), int64(len(all)), nil
}

func (r *fakeOrderRepo) CountByCustomer(customerID uuid.UUID) (int64, error) {
	var count int64
	for _, o := range r.orders {
		if o.CustomerID != nil && *o.CustomerID == customerID {
			count++
		}
	}
	return count, nil
}

func paginate[T any](all []T, page, pageSize int) []T {
	start := (page - 1) * pageSize
	if start >= len(all) {
		return nil
	}
	end := start + pageSize
	if end > len(all) {
		end = len(all)
	}
	return all[start:end]
}
