package schemas

import (
	"testing"

	"github.com/aabb-jequie/app-inscricao/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckPaymentKeys(t *testing.T) {
	assert.NoError(t, CheckPaymentKeys([]byte(`{"fullName":"Maria","paymentToken":"tok_123"}`)))

	err := CheckPaymentKeys([]byte(`{"fullName":"Maria","cardNumber":"4111111111111111","bankAccount":"123"}`))
	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrForbiddenPaymentKey)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{
		"bankAccount: Dados de cartão ou conta bancária não são aceitos",
		"cardNumber: Dados de cartão ou conta bancária não são aceitos",
	}, verr.Details())
}

func TestCheckPaymentKeys_InvalidJSON(t *testing.T) {
	err := CheckPaymentKeys([]byte(`[1,2]`))
	require.Error(t, err)
	assert.NotErrorIs(t, err, models.ErrForbiddenPaymentKey)
}
