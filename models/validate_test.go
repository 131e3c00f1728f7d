package models

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreatePartnerRequestValidate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		req := CreatePartnerRequest{Name: "Acme", Website: "https://acme.example"}
		assert.NoError(t, req.Validate())
	})

	t.Run("website optional", func(t *testing.T) {
		req := CreatePartnerRequest{Name: "Acme"}
		assert.NoError(t, req.Validate())
	})

	t.Run("empty name", func(t *testing.T) {
		req := CreatePartnerRequest{Name: "  "}
		assert.Error(t, req.Validate())
	})

	t.Run("name too long", func(t *testing.T) {
		req := CreatePartnerRequest{Name: strings.Repeat("a", 101)}
		assert.Error(t, req.Validate())
	})

	t.Run("unicode name counted by runes", func(t *testing.T) {
		// 100 Türkçe karakter: byte olarak 100'den uzun ama geçerli
		req := CreatePartnerRequest{Name: strings.Repeat("ş", 100)}
		assert.NoError(t, req.Validate())
	})

	t.Run("invalid website", func(t *testing.T) {
		req := CreatePartnerRequest{Name: "Acme", Website: "not a url"}
		assert.Error(t, req.Validate())
	})
}

func TestUpdatePartnerRequestValidate(t *testing.T) {
	t.Run("nil fields skip validation", func(t *testing.T) {
		req := UpdatePartnerRequest{}
		assert.NoError(t, req.Validate())
	})

	t.Run("empty website clears", func(t *testing.T) {
		// Boş string geçerli — mevcut website'ı silmek anlamına gelir
		empty := ""
		req := UpdatePartnerRequest{Website: &empty}
		assert.NoError(t, req.Validate())
	})

	t.Run("set name validated", func(t *testing.T) {
		bad := "  "
		req := UpdatePartnerRequest{Name: &bad}
		assert.Error(t, req.Validate())
	})
}

func TestCreateContactMessageRequestValidate(t *testing.T) {
	valid := func() CreateContactMessageRequest {
		return CreateContactMessageRequest{
			Name:  "Ziyaretçi",
			Email: "visitor@example.com",
			Body:  "Merhaba, fiyat teklifi almak istiyorum.",
		}
	}

	t.Run("valid", func(t *testing.T) {
		req := valid()
		assert.NoError(t, req.Validate())
	})

	t.Run("subject optional", func(t *testing.T) {
		req := valid()
		req.Subject = "Teklif"
		assert.NoError(t, req.Validate())
	})

	t.Run("invalid email", func(t *testing.T) {
		for _, email := range []string{"", "plain", "missing@tld", "@nouser.com", "spaces in@mail.com"} {
			req := valid()
			req.Email = email
			assert.Error(t, req.Validate(), "email: %q", email)
		}
	})

	t.Run("empty body", func(t *testing.T) {
		req := valid()
		req.Body = "   "
		assert.Error(t, req.Validate())
	})

	t.Run("body too long", func(t *testing.T) {
		req := valid()
		req.Body = strings.Repeat("a", 5001)
		assert.Error(t, req.Validate())
	})
}

func TestCreateCareerRequestValidate(t *testing.T) {
	valid := func() CreateCareerRequest {
		return CreateCareerRequest{
			Title:       "Backend Developer",
			Department:  "Engineering",
			Location:    "İstanbul / Remote",
			Type:        "full-time",
			Description: "Go bilen backend geliştirici arıyoruz.",
		}
	}

	t.Run("valid", func(t *testing.T) {
		req := valid()
		require.NoError(t, req.Validate())
	})

	t.Run("all career types accepted", func(t *testing.T) {
		for _, typ := range []string{"full-time", "part-time", "contract", "internship"} {
			req := valid()
			req.Type = typ
			assert.NoError(t, req.Validate(), "type: %s", typ)
		}
	})

	t.Run("unknown type rejected", func(t *testing.T) {
		req := valid()
		req.Type = "freelance"
		assert.Error(t, req.Validate())
	})

	t.Run("missing department", func(t *testing.T) {
		req := valid()
		req.Department = ""
		assert.Error(t, req.Validate())
	})
}
