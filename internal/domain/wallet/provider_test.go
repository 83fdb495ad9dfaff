package wallet_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"payeasy.backend/internal/domain/wallet"
)

func TestValidatePhone_MpesaPrefixes(t *testing.T) {
	for _, phone := range []string{"841234567", "851234567"} {
		clean, err := wallet.ValidatePhone(phone, wallet.ProviderMpesa)
		require.NoError(t, err, phone)
		assert.Equal(t, phone, clean)
	}

	for _, phone := range []string{"861234567", "871234567", "821234567"} {
		_, err := wallet.ValidatePhone(phone, wallet.ProviderMpesa)
		assert.Error(t, err, phone)
	}
}

func TestValidatePhone_EmolaPrefixes(t *testing.T) {
	for _, phone := range []string{"861234567", "871234567"} {
		clean, err := wallet.ValidatePhone(phone, wallet.ProviderEmola)
		require.NoError(t, err, phone)
		assert.Equal(t, phone, clean)
	}

	for _, phone := range []string{"841234567", "851234567"} {
		_, err := wallet.ValidatePhone(phone, wallet.ProviderEmola)
		assert.Error(t, err, phone)
	}
}

func TestValidatePhone_StripsFormatting(t *testing.T) {
	clean, err := wallet.ValidatePhone("84 123-45.67", wallet.ProviderMpesa)
	require.NoError(t, err)
	assert.Equal(t, "841234567", clean)
}

func TestValidatePhone_CountryCode(t *testing.T) {
	clean, err := wallet.ValidatePhone("+258841234567", wallet.ProviderMpesa)
	require.NoError(t, err)
	assert.Equal(t, "841234567", clean)

	clean, err = wallet.ValidatePhone("258861234567", wallet.ProviderEmola)
	require.NoError(t, err)
	assert.Equal(t, "861234567", clean)

	// Too long without the country code.
	_, err = wallet.ValidatePhone("8412345678", wallet.ProviderMpesa)
	assert.Error(t, err)
}

func TestValidatePhone_TooShort(t *testing.T) {
	_, err := wallet.ValidatePhone("84123456", wallet.ProviderMpesa)
	assert.Error(t, err)

	_, err = wallet.ValidatePhone("", wallet.ProviderMpesa)
	assert.Error(t, err)
}

func TestValidatePhone_UnknownProvider(t *testing.T) {
	_, err := wallet.ValidatePhone("841234567", wallet.Provider("paypal"))
	assert.Error(t, err)
}

func TestProviderValid(t *testing.T) {
	assert.True(t, wallet.ProviderMpesa.Valid())
	assert.True(t, wallet.ProviderEmola.Valid())
	assert.False(t, wallet.Provider("visa").Valid())
}

func TestProviderPrefixes(t *testing.T) {
	assert.ElementsMatch(t, []string{"84", "85"}, wallet.ProviderMpesa.Prefixes())
	assert.ElementsMatch(t, []string{"86", "87"}, wallet.ProviderEmola.Prefixes())
}
