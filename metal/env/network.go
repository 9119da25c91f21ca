package env

import "strings"

type NetEnvironment struct {
	HttpHost string `validate:"required,lowercase,min=7"`
	HttpPort string `validate:"required,numeric"`
	// TrustedProxies lists the IPs or CIDR ranges allowed to set X-Forwarded-For.
	TrustedProxies []string `validate:"omitempty,dive,cidr|ip"`
}

func (e NetEnvironment) GetHostURL() string {
	return e.HttpHost + ":" + e.HttpPort
}

// SplitList turns a comma separated env value into its trimmed, non-empty parts.
func SplitList(value string) []string {
	var items []string

	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}

	return items
}
