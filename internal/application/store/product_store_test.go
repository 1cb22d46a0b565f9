package store_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-client/internal/application/store"
	"github.com/jhoicas/inventario-client/internal/domain"
	"github.com/jhoicas/inventario-client/internal/domain/entity"
	"github.com/jhoicas/inventario-client/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes
// ──────────────────────────────────────────────────────────────────────────────

// fakeService backend en memoria con contadores de peticiones, para verificar
// qué operaciones viajan (o no) al backend.
type fakeService struct {
	products map[string][]entity.Product

	listCalls   int
	createCalls int
	updateCalls int
	deleteCalls int

	listErr   error
	createErr error
	updateErr error
}

func newFakeService() *fakeService {
	return &fakeService{products: map[string][]entity.Product{}}
}

func (f *fakeService) List(_ context.Context, owner string) ([]entity.Product, error) {
	f.listCalls++
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]entity.Product, len(f.products[owner]))
	copy(out, f.products[owner])
	return out, nil
}

func (f *fakeService) Create(_ context.Context, owner string, p entity.Product) error {
	f.createCalls++
	if f.createErr != nil {
		return f.createErr
	}
	p.ID = "id-" + p.SKU
	f.products[owner] = append(f.products[owner], p)
	return nil
}

func (f *fakeService) Update(_ context.Context, p entity.Product) error {
	f.updateCalls++
	if f.updateErr != nil {
		return f.updateErr
	}
	for owner, list := range f.products {
		for i := range list {
			if list[i].ID == p.ID {
				f.products[owner][i] = p
				return nil
			}
		}
	}
	return domain.ErrNotFound
}

func (f *fakeService) Delete(_ context.Context, id string) error {
	f.deleteCalls++
	for owner, list := range f.products {
		for i := range list {
			if list[i].ID == id {
				f.products[owner] = append(list[:i], list[i+1:]...)
				return nil
			}
		}
	}
	return domain.ErrNotFound
}

// fakeIdentity identidad fija para los tests.
type fakeIdentity struct {
	business *entity.Business
}

func (f *fakeIdentity) ActiveBusiness() *entity.Business { return f.business }

func buildStore(t *testing.T, svc *fakeService, b *entity.Business) *store.Store {
	t.Helper()
	s := store.New(svc, logger.Nop())
	s.SetIdentity(&fakeIdentity{business: b})
	return s
}

func acme() *entity.Business {
	return &entity.Business{Name: "Acme", Email: "acme@example.com"}
}

func seed(svc *fakeService, qty int) {
	svc.products["acme@example.com"] = []entity.Product{
		{ID: "p1", Name: "Tornillos", SKU: "A1", Price: decimal.NewFromInt(10), Quantity: qty},
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Refresh
// ──────────────────────────────────────────────────────────────────────────────

func TestRefresh_SinSesionNoContactaBackend(t *testing.T) {
	svc := newFakeService()
	s := buildStore(t, svc, nil)

	require.NoError(t, s.Refresh(context.Background()))
	assert.Empty(t, s.Products())
	assert.Zero(t, svc.listCalls, "sin identidad activa nunca se hace fetch anónimo")
}

func TestRefresh_ReemplazaListaCompleta(t *testing.T) {
	svc := newFakeService()
	seed(svc, 2)
	s := buildStore(t, svc, acme())

	require.NoError(t, s.Refresh(context.Background()))
	require.Len(t, s.Products(), 1)
	assert.Equal(t, "A1", s.Products()[0].SKU)
}

func TestRefresh_FalloDeTransporteConservaListaAnterior(t *testing.T) {
	svc := newFakeService()
	seed(svc, 2)
	s := buildStore(t, svc, acme())
	require.NoError(t, s.Refresh(context.Background()))
	require.Len(t, s.Products(), 1)

	// La red cae: el fetch falla en silencio y la lista anterior sobrevive.
	svc.listErr = domain.ErrTransport
	require.NoError(t, s.Refresh(context.Background()),
		"el fallo de fetch es soft-fail, no debe propagarse")
	assert.Len(t, s.Products(), 1, "la lista anterior debe conservarse")
}

// ──────────────────────────────────────────────────────────────────────────────
// Add
// ──────────────────────────────────────────────────────────────────────────────

func TestAdd_ExitoResincronizaYLimpiaBorrador(t *testing.T) {
	svc := newFakeService()
	s := buildStore(t, svc, acme())
	s.SetDraft(store.Draft{Name: "Tuercas", SKU: "B2", Price: "5", Quantity: "10"})

	err := s.Add(context.Background(), entity.Product{
		Name: "Tuercas", SKU: "B2", Price: decimal.NewFromInt(5), Quantity: 10,
	})
	require.NoError(t, err)

	assert.Equal(t, 1, svc.createCalls)
	assert.Equal(t, 1, svc.listCalls, "toda mutación exitosa dispara una recarga completa")
	require.Len(t, s.Products(), 1, "el alta seguida de fetch debe reflejar el producto")
	assert.Equal(t, "B2", s.Products()[0].SKU)
	assert.Empty(t, s.Draft().SKU, "el borrador se limpia tras el alta exitosa")
}

func TestAdd_SKUDuplicadoConservaBorrador(t *testing.T) {
	svc := newFakeService()
	svc.createErr = domain.ErrDuplicateSKU
	s := buildStore(t, svc, acme())
	draft := store.Draft{Name: "Tuercas", SKU: "B2", Price: "5", Quantity: "10"}
	s.SetDraft(draft)

	err := s.Add(context.Background(), entity.Product{Name: "Tuercas", SKU: "B2"})
	require.ErrorIs(t, err, domain.ErrDuplicateSKU)

	assert.Equal(t, draft, s.Draft(), "en fallo el borrador queda intacto para corregirlo")
	assert.Zero(t, svc.listCalls, "una mutación fallida no resincroniza")
}

func TestAdd_SinSesionRetornaSesionExpirada(t *testing.T) {
	svc := newFakeService()
	s := buildStore(t, svc, nil)

	err := s.Add(context.Background(), entity.Product{Name: "X", SKU: "X1"})
	require.ErrorIs(t, err, domain.ErrSessionExpired)
	assert.Zero(t, svc.createCalls)
}

// ──────────────────────────────────────────────────────────────────────────────
// AdjustQuantity
// ──────────────────────────────────────────────────────────────────────────────

func TestAdjustQuantity_ResultadoNegativoNoEnviaNada(t *testing.T) {
	svc := newFakeService()
	seed(svc, 2)
	s := buildStore(t, svc, acme())
	require.NoError(t, s.Refresh(context.Background()))

	err := s.AdjustQuantity(context.Background(), "p1", -3)
	require.ErrorIs(t, err, domain.ErrInvalidInput)

	assert.Zero(t, svc.updateCalls, "con resultado negativo no debe viajar ninguna petición")
	assert.Equal(t, 2, s.Products()[0].Quantity, "la cantidad mostrada no cambia")
}

func TestAdjustQuantity_AplicaDeltaYResincroniza(t *testing.T) {
	svc := newFakeService()
	seed(svc, 2)
	s := buildStore(t, svc, acme())
	require.NoError(t, s.Refresh(context.Background()))

	require.NoError(t, s.AdjustQuantity(context.Background(), "p1", 1))
	assert.Equal(t, 1, svc.updateCalls)
	assert.Equal(t, 3, s.Products()[0].Quantity)

	require.NoError(t, s.AdjustQuantity(context.Background(), "p1", -3))
	assert.Equal(t, 0, s.Products()[0].Quantity, "bajar exactamente a cero sí es válido")
}

func TestAdjustQuantity_ProductoDesconocido(t *testing.T) {
	svc := newFakeService()
	s := buildStore(t, svc, acme())

	err := s.AdjustQuantity(context.Background(), "no-existe", 1)
	require.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Zero(t, svc.updateCalls)
}

// ──────────────────────────────────────────────────────────────────────────────
// Update / Remove
// ──────────────────────────────────────────────────────────────────────────────

func TestUpdate_ReemplazaYLimpiaEdicion(t *testing.T) {
	svc := newFakeService()
	seed(svc, 2)
	s := buildStore(t, svc, acme())
	require.NoError(t, s.Refresh(context.Background()))

	s.BeginEdit(s.Products()[0])
	require.NotNil(t, s.Editing())

	edited := s.Products()[0]
	edited.Name = "Tornillos galvanizados"
	edited.Price = decimal.NewFromInt(12)
	require.NoError(t, s.Update(context.Background(), edited))

	assert.Nil(t, s.Editing(), "la edición en curso se limpia tras el éxito")
	assert.Equal(t, "Tornillos galvanizados", s.Products()[0].Name)
}

func TestRemove_SinConfirmacionNoEnviaNada(t *testing.T) {
	svc := newFakeService()
	seed(svc, 2)
	s := buildStore(t, svc, acme())
	require.NoError(t, s.Refresh(context.Background()))

	err := s.Remove(context.Background(), "p1", false)
	require.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Zero(t, svc.deleteCalls, "sin confirmación explícita no hay petición")
	assert.Len(t, s.Products(), 1)
}

func TestRemove_ConfirmadoEliminaYResincroniza(t *testing.T) {
	svc := newFakeService()
	seed(svc, 2)
	s := buildStore(t, svc, acme())
	require.NoError(t, s.Refresh(context.Background()))

	require.NoError(t, s.Remove(context.Background(), "p1", true))
	assert.Equal(t, 1, svc.deleteCalls)
	assert.Empty(t, s.Products(), "la eliminación seguida de fetch no debe contener el id")
}

// ──────────────────────────────────────────────────────────────────────────────
// Clear
// ──────────────────────────────────────────────────────────────────────────────

func TestClear_VaciaTodoElEstado(t *testing.T) {
	svc := newFakeService()
	seed(svc, 2)
	s := buildStore(t, svc, acme())
	require.NoError(t, s.Refresh(context.Background()))
	s.SetDraft(store.Draft{SKU: "B2"})
	s.BeginEdit(s.Products()[0])

	s.Clear()

	assert.Empty(t, s.Products())
	assert.Empty(t, s.Draft().SKU)
	assert.Nil(t, s.Editing())
}
