package sessionfile_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-client/internal/domain"
	"github.com/jhoicas/inventario-client/internal/domain/entity"
	"github.com/jhoicas/inventario-client/internal/infrastructure/sessionfile"
)

const testSecret = "secreto-de-tests-no-usar"

func newStore(t *testing.T, ttl time.Duration) *sessionfile.Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "session.jwt")
	return sessionfile.New(path, testSecret, "inventario-test", ttl)
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	s := newStore(t, time.Hour)
	b := &entity.Business{Name: "Acme", Logo: "data:image/jpeg;base64,abc", Email: "acme@example.com"}

	require.NoError(t, s.Save(b))

	got, err := s.Load()
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, *b, *got)
}

func TestLoad_SinArchivoEsEstadoNormal(t *testing.T) {
	s := newStore(t, time.Hour)

	got, err := s.Load()
	assert.NoError(t, err, "la ausencia del registro no es un error")
	assert.Nil(t, got)
}

func TestLoad_TokenExpirado(t *testing.T) {
	s := newStore(t, -time.Minute) // ya nace expirado
	require.NoError(t, s.Save(&entity.Business{Name: "Acme", Email: "acme@example.com"}))

	got, err := s.Load()
	assert.ErrorIs(t, err, domain.ErrSessionExpired)
	assert.Nil(t, got)
}

func TestLoad_SecretDistintoInvalida(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.jwt")
	escritor := sessionfile.New(path, "un-secreto", "inventario-test", time.Hour)
	require.NoError(t, escritor.Save(&entity.Business{Name: "Acme", Email: "acme@example.com"}))

	lector := sessionfile.New(path, "otro-secreto", "inventario-test", time.Hour)
	got, err := lector.Load()
	assert.ErrorIs(t, err, domain.ErrSessionExpired, "una firma que no valida se trata como sesión no restaurable")
	assert.Nil(t, got)
}

func TestClear_IdempotenteSinArchivo(t *testing.T) {
	s := newStore(t, time.Hour)
	assert.NoError(t, s.Clear(), "borrar un registro inexistente no es un error")

	require.NoError(t, s.Save(&entity.Business{Name: "Acme", Email: "acme@example.com"}))
	require.NoError(t, s.Clear())

	got, err := s.Load()
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestSave_ReemplazaRegistroAnterior(t *testing.T) {
	s := newStore(t, time.Hour)
	require.NoError(t, s.Save(&entity.Business{Name: "Acme", Email: "acme@example.com"}))
	require.NoError(t, s.Save(&entity.Business{Name: "Globex", Email: "globex@example.com"}))

	got, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, "Globex", got.Name, "el login reemplaza el registro, no lo acumula")
}
