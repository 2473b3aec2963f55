package bans

import (
	"errors"
	"fmt"
	"net/netip"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/tezcatlipoca/tezcatlipoca-auth/internal/pkg/validators"
)

// BanEntry is a persisted ban managed through the admin commands
type BanEntry struct {
	ID              string    `validate:"required,uuid4"`
	Address         string    `validate:"required,ipOrCIDR"`
	Reason          string    `validate:"max=255"`
	DateTimeCreated time.Time `validate:"required"`
}

// Validate for validating BanEntry struct
func (b *BanEntry) Validate() error {
	validate := validator.New()

	if err := validate.RegisterValidation("ipOrCIDR", validators.IPOrCIDRValidation); err != nil {
		return fmt.Errorf("failed to register custom validator: %w", err)
	}

	err := validate.Struct(b)
	if err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			var messages []string
			for _, fieldErr := range validationErrors {
				messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
			}
			return fmt.Errorf("validation failed: %v", messages)
		}
		return fmt.Errorf("validation error: %w", err)
	}

	return nil
}

// NormalizeAddress trims the address and rewrites IPs and prefixes in
// canonical form, so that one address is always stored the same way.
func NormalizeAddress(address string) string {
	entry := strings.TrimSpace(address)
	if prefix, err := netip.ParsePrefix(entry); err == nil {
		// IPv4-mapped prefixes are matched against unmapped addresses.
		if prefix.Addr().Is4In6() && prefix.Bits() >= 96 {
			prefix = netip.PrefixFrom(prefix.Addr().Unmap(), prefix.Bits()-96)
		}
		return prefix.Masked().String()
	}
	if addr, err := netip.ParseAddr(entry); err == nil {
		return addr.Unmap().String()
	}
	return entry
}
