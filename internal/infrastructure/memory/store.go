// Package memory implementa todos los puertos de repositorio en proceso.
// Se usa en tests y en modo demo sin base de datos; no persiste nada.
package memory

import (
	"sort"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/stockflow-api/internal/domain/entity"
)

// Store guarda el estado completo protegido por un único mutex.
type Store struct {
	mu sync.RWMutex

	companies  map[int64]entity.Company
	warehouses map[int64]entity.Warehouse
	products   map[int64]entity.Product
	inventory  map[entity.StockKey]entity.Inventory
	logs       []entity.InventoryLog
	suppliers  map[int64]entity.Supplier
	links      map[int64][]int64 // product_id -> supplier ids

	nextID int64

	// inventoryErr, si no es nil, lo devuelve InventoryRepo.Create (simula un fallo a mitad de transacción).
	inventoryErr error
}

// NewStore crea un store vacío.
func NewStore() *Store {
	return &Store{
		companies:  make(map[int64]entity.Company),
		warehouses: make(map[int64]entity.Warehouse),
		products:   make(map[int64]entity.Product),
		inventory:  make(map[entity.StockKey]entity.Inventory),
		suppliers:  make(map[int64]entity.Supplier),
		links:      make(map[int64][]int64),
	}
}

func (s *Store) newID() int64 {
	s.nextID++
	return s.nextID
}

// AddCompany registra una empresa y devuelve su id.
func (s *Store) AddCompany(name string) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.newID()
	s.companies[id] = entity.Company{ID: id, Name: name, CreatedAt: time.Now()}
	return id
}

// AddWarehouse registra una bodega de la empresa y devuelve su id.
func (s *Store) AddWarehouse(companyID int64, name string) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.newID()
	s.warehouses[id] = entity.Warehouse{ID: id, CompanyID: companyID, Name: name}
	return id
}

// AddProduct registra un producto con su umbral y devuelve su id.
func (s *Store) AddProduct(name, sku string, price decimal.Decimal, threshold int) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.newID()
	s.products[id] = entity.Product{ID: id, Name: name, SKU: sku, Price: price, StockThreshold: threshold, CreatedAt: time.Now()}
	return id
}

// SetStock fija la cantidad de un par producto+bodega.
func (s *Store) SetStock(productID, warehouseID int64, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := entity.StockKey{ProductID: productID, WarehouseID: warehouseID}
	s.inventory[key] = entity.Inventory{ProductID: productID, WarehouseID: warehouseID, Quantity: quantity, UpdatedAt: time.Now()}
}

// AddLog agrega un movimiento al libro.
func (s *Store) AddLog(productID, warehouseID int64, reason string, change int, at time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.logs = append(s.logs, entity.InventoryLog{
		ID:             s.newID(),
		ProductID:      productID,
		WarehouseID:    warehouseID,
		Reason:         reason,
		QuantityChange: change,
		CreatedAt:      at,
	})
}

// AddSupplier registra un proveedor y devuelve su id. email vacío = sin contacto.
func (s *Store) AddSupplier(name, email string) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.newID()
	sup := entity.Supplier{ID: id, Name: name}
	if email != "" {
		sup.ContactEmail = &email
	}
	s.suppliers[id] = sup
	return id
}

// AddSupplierWithID registra un proveedor con id explícito (para probar el desempate por id).
func (s *Store) AddSupplierWithID(id int64, name, email string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sup := entity.Supplier{ID: id, Name: name}
	if email != "" {
		sup.ContactEmail = &email
	}
	s.suppliers[id] = sup
	if id > s.nextID {
		s.nextID = id
	}
}

// LinkSupplier vincula un proveedor con un producto.
func (s *Store) LinkSupplier(supplierID, productID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.links[productID] = append(s.links[productID], supplierID)
}

// FailInventoryWrites hace que las altas de inventario fallen con err (nil lo desactiva).
func (s *Store) FailInventoryWrites(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.inventoryErr = err
}

// Product devuelve el producto por id.
func (s *Store) Product(id int64) (entity.Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.products[id]
	return p, ok
}

// Stock devuelve la fila de inventario del par.
func (s *Store) Stock(productID, warehouseID int64) (entity.Inventory, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	inv, ok := s.inventory[entity.StockKey{ProductID: productID, WarehouseID: warehouseID}]
	return inv, ok
}

// ProductCount devuelve la cantidad de productos.
func (s *Store) ProductCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.products)
}

// snapshot copia lo que una transacción puede modificar.
type snapshot struct {
	products  map[int64]entity.Product
	inventory map[entity.StockKey]entity.Inventory
	nextID    int64
}

func (s *Store) takeSnapshot() snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	snap := snapshot{
		products:  make(map[int64]entity.Product, len(s.products)),
		inventory: make(map[entity.StockKey]entity.Inventory, len(s.inventory)),
		nextID:    s.nextID,
	}
	for k, v := range s.products {
		snap.products[k] = v
	}
	for k, v := range s.inventory {
		snap.inventory[k] = v
	}
	return snap
}

func (s *Store) restore(snap snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products = snap.products
	s.inventory = snap.inventory
	s.nextID = snap.nextID
}

func sortedIDs(ids []int64) []int64 {
	out := append([]int64(nil), ids...)
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
