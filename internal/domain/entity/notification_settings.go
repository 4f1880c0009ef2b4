package entity

import "time"

// Frecuencias de notificación por correo.
const (
	FrequencyRealtime = "realtime"
	FrequencyHourly   = "hourly"
	FrequencyDaily    = "daily"
)

// Niveles de notificación en la UI del admin. Controlan qué superficies
// muestran las alertas, no si se calculan.
const (
	UILevelMinimal  = "minimal"
	UILevelStandard = "standard"
	UILevelFull     = "full"
)

// NotificationSettings es la configuración singleton de alertas de stock.
// Invariante: GlobalCriticalStockThreshold <= GlobalLowStockThreshold.
// Se crea con defaults en la primera lectura y se relee en cada consulta del
// agregador (sin cache entre requests).
type NotificationSettings struct {
	GlobalLowStockThreshold      int
	GlobalCriticalStockThreshold int
	EmailNotifications           bool
	AdminEmail                   string
	NotificationFrequency        string
	UINotificationLevel          string
	UpdatedAt                    time.Time
}

// DefaultNotificationSettings devuelve los valores iniciales del singleton.
func DefaultNotificationSettings() *NotificationSettings {
	return &NotificationSettings{
		GlobalLowStockThreshold:      5,
		GlobalCriticalStockThreshold: 2,
		EmailNotifications:           false,
		AdminEmail:                   "",
		NotificationFrequency:        FrequencyDaily,
		UINotificationLevel:          UILevelStandard,
	}
}

// ValidFrequency y ValidUILevel validan pertenencia a los enums.
func ValidFrequency(f string) bool {
	return f == FrequencyRealtime || f == FrequencyHourly || f == FrequencyDaily
}

func ValidUILevel(l string) bool {
	return l == UILevelMinimal || l == UILevelStandard || l == UILevelFull
}
