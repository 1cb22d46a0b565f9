package config

import (
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Config agrupa la configuración del cliente (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App     AppConfig
	API     APIConfig
	Storage StorageConfig
	Session SessionConfig
	HTTP    HTTPConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// APIConfig dirección base del colaborador REST (backend de cuentas y productos).
type APIConfig struct {
	BaseURL string
}

// StorageConfig selección del backend de persistencia y directorio local de datos.
// Backend "cloud" usa el colaborador REST; "local" guarda cuentas y productos
// únicamente en el dispositivo.
type StorageConfig struct {
	Backend       string // cloud | local
	DataDir       string
	MaxLocalBytes int64 // presupuesto del archivo local (variante offline)
}

// SessionConfig firma y vigencia del registro de sesión persistido.
type SessionConfig struct {
	Secret   string
	TTLHours int
	Issuer   string
}

// HTTPConfig configuración del shell HTTP local.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return c.Host + ":" + strconv.Itoa(c.Port)
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, API_BASE_URL, STORAGE_BACKEND, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env o config.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "inventario-client"),
		},
		API: APIConfig{
			BaseURL: getString(v, "API_BASE_URL", "http://localhost:8080"),
		},
		Storage: StorageConfig{
			Backend:       getString(v, "STORAGE_BACKEND", "cloud"),
			DataDir:       getString(v, "DATA_DIR", "./data"),
			MaxLocalBytes: int64(getInt(v, "STORAGE_MAX_LOCAL_BYTES", 1<<20)),
		},
		Session: SessionConfig{
			Secret:   getString(v, "SESSION_SECRET", ""),
			TTLHours: getInt(v, "SESSION_TTL_HOURS", 24*30),
			Issuer:   getString(v, "SESSION_ISSUER", "inventario-client"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "127.0.0.1"),
			Port: getInt(v, "HTTP_PORT", 3000),
		},
	}

	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, _ := strconv.Atoi(v.GetString(key))
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}
