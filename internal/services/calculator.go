package services

import (
	"fmt"

	models "github.com/glkeru/cardfee/internal/models"
	"github.com/shopspring/decimal"
)

// Отмена платы целиком или никак
func CalculateWaiver(baseFee decimal.Decimal, satisfied bool) (waiver decimal.Decimal, actual decimal.Decimal, err error) {
	waiver = decimal.Zero
	if satisfied {
		waiver = baseFee
	}
	actual = baseFee.Sub(waiver)
	if err := checkAmounts(baseFee, waiver, actual); err != nil {
		return decimal.Zero, decimal.Zero, err
	}
	return waiver, actual, nil
}

func checkAmounts(baseFee, waiver, actual decimal.Decimal) error {
	switch {
	case waiver.IsNegative():
		return &models.InvariantViolationError{Detail: fmt.Sprintf("waiver amount %s is negative", waiver)}
	case waiver.GreaterThan(baseFee):
		return &models.InvariantViolationError{Detail: fmt.Sprintf("waiver amount %s exceeds base fee %s", waiver, baseFee)}
	case actual.IsNegative():
		return &models.InvariantViolationError{Detail: fmt.Sprintf("actual fee %s is negative", actual)}
	}
	return nil
}
