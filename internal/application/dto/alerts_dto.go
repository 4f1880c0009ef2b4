package dto

// Severidades en la vista de alertas: derivadas del estado cacheado,
// out_of_stock → critical, low_stock → warning.
const (
	AlertSeverityCritical = "critical"
	AlertSeverityWarning  = "warning"
)

// StockAlertItem un producto en alerta de stock.
type StockAlertItem struct {
	ProductID   string `json:"product_id"`
	ProductName string `json:"product_name"`
	Quantity    int    `json:"quantity"`
	Status      string `json:"status"`
	Severity    string `json:"severity"`
}

// AlertSummary respuesta de GET /api/stock/alerts. Los contadores se calculan
// siempre; ui_notification_level permite a las superficies de UI decidir qué
// renderizar (el indicador compacto las muestra aunque el nivel sea minimal).
type AlertSummary struct {
	CriticalCount       int              `json:"critical_count"`
	WarningCount        int              `json:"warning_count"`
	UINotificationLevel string           `json:"ui_notification_level"`
	Items               []StockAlertItem `json:"items"`
}
