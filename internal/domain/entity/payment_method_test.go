package entity

import (
	"testing"

	errs "github.com/amirhossein-jamali/raffle-service/internal/domain/error"
	"github.com/stretchr/testify/assert"
)

func TestPaymentMethodValidate(t *testing.T) {
	testCases := []struct {
		name    string
		method  PaymentMethod
		wantErr bool
	}{
		{"Valid", PaymentMethod{Code: " Zelle ", Name: "Zelle"}, false},
		{"With separators", PaymentMethod{Code: "pago_movil-2", Name: "Pago Movil"}, false},
		{"Empty code", PaymentMethod{Code: "", Name: "x"}, true},
		{"Spaces in code", PaymentMethod{Code: "pay pal", Name: "x"}, true},
		{"Empty name", PaymentMethod{Code: "cash", Name: " "}, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			m := tc.method
			err := m.Validate()
			if tc.wantErr {
				assert.ErrorIs(t, err, errs.ErrInvalidPaymentMethod)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, NormalizePaymentCode(tc.method.Code), m.Code)
		})
	}
}

func TestPaymentMethodSet(t *testing.T) {
	set := NewPaymentMethodSet([]PaymentMethod{
		{Code: "zelle", Name: "Zelle", Active: true, RequiresProof: true},
		{Code: "cash", Name: "Cash", Active: false},
		{Code: "binance", Name: "Binance", Active: true, RequiresReference: true},
	})

	assert.Equal(t, 2, set.Len())

	m, ok := set.Find("ZELLE")
	assert.True(t, ok)
	assert.True(t, m.RequiresProof)

	_, ok = set.Find("cash")
	assert.False(t, ok, "inactive methods are not part of the set")

	methods := set.Methods()
	methods[0].Name = "changed"
	again, _ := set.Find("zelle")
	assert.Equal(t, "Zelle", again.Name)
}

func TestPagination(t *testing.T) {
	assert.Equal(t, Pagination{Page: 1, PageSize: 20}, Pagination{}.Normalize())
	assert.Equal(t, 200, Pagination{Page: 1, PageSize: 1000}.Normalize().PageSize)
	assert.Equal(t, 40, Pagination{Page: 3, PageSize: 20}.Offset())

	p := Page[int]{Total: 41, PageSize: 20}
	assert.Equal(t, 3, p.TotalPages())
}
