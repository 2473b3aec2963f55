package validators

import (
	"net/netip"
	"strings"

	"github.com/go-playground/validator/v10"
)

// IPOrCIDRValidation accepts a single IPv4/IPv6 address or a CIDR prefix.
func IPOrCIDRValidation(fl validator.FieldLevel) bool {
	value := strings.TrimSpace(fl.Field().String())
	if value == "" {
		return false
	}
	if strings.Contains(value, "/") {
		_, err := netip.ParsePrefix(value)
		return err == nil
	}
	_, err := netip.ParseAddr(value)
	return err == nil
}
