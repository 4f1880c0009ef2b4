// Package stock contiene la lógica pura de clasificación de stock
// (sin efectos secundarios ni dependencias de infraestructura).
package stock

import "github.com/tu-usuario/tienda-stock/internal/domain/entity"

// Classify deriva el estado de stock de un producto. Función pura.
//
// Reglas de desempate: discontinued gana sobre todo lo demás; cantidad cero
// gana sobre cualquier comparación de umbral; el límite low es inclusivo
// (quantity == lowThreshold → low_stock).
//
// criticalThreshold se recibe porque la configuración lo define junto al
// umbral low (critical <= low se valida al escribir la configuración), pero el
// enum de estados no distingue un nivel crítico: la severidad en la vista de
// alertas se deriva del estado, no aquí.
func Classify(quantity, lowThreshold, criticalThreshold int, discontinued bool) string {
	_ = criticalThreshold
	switch {
	case discontinued:
		return entity.StockStatusDiscontinued
	case quantity == 0:
		return entity.StockStatusOutOfStock
	case quantity <= lowThreshold:
		return entity.StockStatusLowStock
	default:
		return entity.StockStatusInStock
	}
}

// EffectiveLowThreshold resuelve el umbral low aplicable a un producto:
// el nivel mínimo propio si está definido (> 0), si no el umbral global.
func EffectiveLowThreshold(minStockLevel, globalLow int) int {
	if minStockLevel > 0 {
		return minStockLevel
	}
	return globalLow
}
