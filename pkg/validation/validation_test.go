package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sinok/quotation-api/pkg/money"
)

type contactFixture struct {
	Name     string       `json:"name" validate:"required,min=2,max=100,namechars"`
	Email    string       `json:"email" validate:"required,email"`
	Phone    string       `json:"phone" validate:"required,intlphone"`
	Wechat   string       `json:"wechat" validate:"omitempty,wechatid"`
	Postal   string       `json:"postal" validate:"required,postalcode"`
	Discount money.Amount `json:"discount" validate:"gte=0,decimal2"`
}

func validFixture() contactFixture {
	return contactFixture{
		Name:   "Globex Corp",
		Email:  "buyer@globex.test",
		Phone:  "+14155550123",
		Postal: "SW1A 1AA",
	}
}

func TestStruct(t *testing.T) {
	v := New()

	t.Run("valid input passes", func(t *testing.T) {
		f := validFixture()
		assert.Nil(t, v.Struct(&f))
	})

	t.Run("every failure is reported, not just the first", func(t *testing.T) {
		f := contactFixture{
			Name:     "Globex!",
			Email:    "not-an-email",
			Phone:    "12345",
			Postal:   "x",
			Discount: money.Amount(-1.005),
		}

		appErr := v.Struct(&f)
		require.NotNil(t, appErr)
		assert.Equal(t, 400, appErr.Code)
		assert.Equal(t, "Validation failed", appErr.Message)

		fields := make(map[string]string, len(appErr.Errors))
		for _, fe := range appErr.Errors {
			fields[fe.Field] = fe.Message
		}
		assert.Contains(t, fields, "name")
		assert.Contains(t, fields, "email")
		assert.Contains(t, fields, "phone")
		assert.Contains(t, fields, "postal")
		assert.Contains(t, fields, "discount")
	})

	t.Run("field paths use JSON names", func(t *testing.T) {
		type wrapper struct {
			Contact contactFixture `json:"contact"`
		}
		w := wrapper{Contact: validFixture()}
		w.Contact.Phone = "nope"

		appErr := v.Struct(&w)
		require.NotNil(t, appErr)
		require.Len(t, appErr.Errors, 1)
		assert.Equal(t, "contact.phone", appErr.Errors[0].Field)
	})

	t.Run("phone must be E.164 style", func(t *testing.T) {
		cases := map[string]bool{
			"+14155550123":      true,
			"+919876543210":     true,
			"+1234567":          true,
			"14155550123":       false,
			"+0123456789":       false,
			"+1 (415) 555-0123": false,
			"+123456":           false,
		}
		for input, ok := range cases {
			f := validFixture()
			f.Phone = input
			err := v.Struct(&f)
			if ok {
				assert.Nil(t, err, "phone %q should pass", input)
			} else {
				assert.NotNil(t, err, "phone %q should fail", input)
			}
		}
	})

	t.Run("wechat id format", func(t *testing.T) {
		f := validFixture()
		f.Wechat = "ok_id-123"
		assert.Nil(t, v.Struct(&f))

		f.Wechat = "x"
		assert.NotNil(t, v.Struct(&f))

		f.Wechat = "has spaces"
		assert.NotNil(t, v.Struct(&f))
	})

	t.Run("money amounts allow at most two decimals", func(t *testing.T) {
		f := validFixture()
		f.Discount = money.Amount(10.50)
		assert.Nil(t, v.Struct(&f))

		f.Discount = money.Amount(10.505)
		appErr := v.Struct(&f)
		require.NotNil(t, appErr)
		assert.Equal(t, "discount", appErr.Errors[0].Field)
	})
}
