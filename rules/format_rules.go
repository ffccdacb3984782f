package rules

import (
	"fmt"
	"net"
	"net/mail"
	"net/url"
	"regexp"
	"strings"

	"github.com/dmitrymomot/rulekit"
)

var (
	// Phone number regex - international format with optional country code
	phoneRegex = regexp.MustCompile(`^\+?[1-9]\d{1,14}$`)

	// Alphanumeric regex
	alphanumericRegex = regexp.MustCompile(`^[a-zA-Z0-9]+$`)

	// Alpha regex
	alphaRegex = regexp.MustCompile(`^[a-zA-Z]+$`)

	// Numeric string regex
	numericStringRegex = regexp.MustCompile(`^[0-9]+$`)

	// Hostname regex per RFC 1123: dot-separated labels of letters, digits,
	// and inner hyphens
	hostnameRegex = regexp.MustCompile(`^[a-zA-Z0-9]([a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?(\.[a-zA-Z0-9]([a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?)*$`)
)

// Email fails when the value is not a valid email address. The grammar is
// RFC 5322 parsing plus the checks typical web forms expect: a single @,
// a non-empty local part, and a dotted domain with no empty labels.
func Email() rulekit.Rule[string] {
	return rulekit.Rule[string]{
		Code:    "email",
		Message: "must be a valid email address",
		Check: func(v string) bool {
			if strings.TrimSpace(v) == "" {
				return false
			}

			addr, err := mail.ParseAddress(v)
			if err != nil {
				return false
			}

			// Additional validation for typical web use
			email := addr.Address
			parts := strings.Split(email, "@")
			if len(parts) != 2 {
				return false
			}

			localPart := parts[0]
			domain := parts[1]

			if localPart == "" {
				return false
			}

			// Domain must contain at least one dot and cannot start/end with dot
			if !strings.Contains(domain, ".") || strings.HasPrefix(domain, ".") || strings.HasSuffix(domain, ".") {
				return false
			}

			for _, part := range strings.Split(domain, ".") {
				if part == "" {
					return false
				}
			}

			return true
		},
	}
}

// URL fails when the value is not an absolute URL with a scheme and host.
func URL() rulekit.Rule[string] {
	return rulekit.Rule[string]{
		Code:    "url",
		Message: "must be a valid URL",
		Check: func(v string) bool {
			if strings.TrimSpace(v) == "" {
				return false
			}
			u, err := url.ParseRequestURI(v)
			if err != nil {
				return false
			}
			return u.Scheme != "" && u.Host != ""
		},
	}
}

// URLWithScheme fails when the value is not a valid URL using one of the
// given schemes.
func URLWithScheme(schemes ...string) rulekit.Rule[string] {
	r := rulekit.Rule[string]{
		Code:    "url_scheme",
		Message: "must be a valid URL with scheme: " + strings.Join(schemes, ", "),
		Meta:    map[string]any{"schemes": strings.Join(schemes, ", ")},
		Check: func(v string) bool {
			if strings.TrimSpace(v) == "" {
				return false
			}
			u, err := url.ParseRequestURI(v)
			if err != nil || u.Host == "" {
				return false
			}
			for _, s := range schemes {
				if strings.EqualFold(u.Scheme, s) {
					return true
				}
			}
			return false
		},
	}
	if len(schemes) == 0 {
		return r.Invalid(fmt.Errorf("no schemes given"))
	}
	return r
}

// Phone fails when the value is not an international (E.164) phone number.
// Spaces and dashes are stripped before matching.
func Phone() rulekit.Rule[string] {
	return rulekit.Rule[string]{
		Code:    "phone",
		Message: "must be a valid phone number in international format",
		Check: func(v string) bool {
			if strings.TrimSpace(v) == "" {
				return false
			}
			cleaned := strings.ReplaceAll(strings.ReplaceAll(v, " ", ""), "-", "")

			// Minimum length of a dialable number
			if len(cleaned) < 7 {
				return false
			}

			return phoneRegex.MatchString(cleaned)
		},
	}
}

// IPv4 fails when the value is not an IPv4 address.
func IPv4() rulekit.Rule[string] {
	return rulekit.Rule[string]{
		Code:    "ipv4",
		Message: "must be a valid IPv4 address",
		Check: func(v string) bool {
			if strings.TrimSpace(v) == "" {
				return false
			}
			ip := net.ParseIP(v)
			return ip != nil && ip.To4() != nil
		},
	}
}

// IPv6 fails when the value is not an IPv6 address, including IPv4-mapped
// forms written with colons.
func IPv6() rulekit.Rule[string] {
	return rulekit.Rule[string]{
		Code:    "ipv6",
		Message: "must be a valid IPv6 address",
		Check: func(v string) bool {
			if strings.TrimSpace(v) == "" {
				return false
			}
			ip := net.ParseIP(v)
			if ip == nil {
				return false
			}
			return ip.To4() == nil || strings.Contains(v, ":")
		},
	}
}

// IP fails when the value is neither an IPv4 nor an IPv6 address.
func IP() rulekit.Rule[string] {
	return rulekit.Rule[string]{
		Code:    "ip",
		Message: "must be a valid IP address",
		Check: func(v string) bool {
			if strings.TrimSpace(v) == "" {
				return false
			}
			return net.ParseIP(v) != nil
		},
	}
}

// MAC fails when the value is not a MAC address in a form net.ParseMAC
// accepts, such as AA:BB:CC:DD:EE:FF or AA-BB-CC-DD-EE-FF.
func MAC() rulekit.Rule[string] {
	return rulekit.Rule[string]{
		Code:    "mac",
		Message: "must be a valid MAC address",
		Check: func(v string) bool {
			if strings.TrimSpace(v) == "" {
				return false
			}
			_, err := net.ParseMAC(v)
			return err == nil
		},
	}
}

// Alphanumeric fails when the value contains anything but ASCII letters and
// digits.
func Alphanumeric() rulekit.Rule[string] {
	return rulekit.Rule[string]{
		Code:    "alphanumeric",
		Message: "must contain only letters and numbers",
		Check: func(v string) bool {
			return alphanumericRegex.MatchString(v)
		},
	}
}

// Alpha fails when the value contains anything but ASCII letters.
func Alpha() rulekit.Rule[string] {
	return rulekit.Rule[string]{
		Code:    "alpha",
		Message: "must contain only letters",
		Check: func(v string) bool {
			return alphaRegex.MatchString(v)
		},
	}
}

// NumericString fails when the value contains anything but ASCII digits.
func NumericString() rulekit.Rule[string] {
	return rulekit.Rule[string]{
		Code:    "numeric_string",
		Message: "must contain only digits",
		Check: func(v string) bool {
			return numericStringRegex.MatchString(v)
		},
	}
}

// Hostname fails when the value is not an RFC 1123 hostname.
func Hostname() rulekit.Rule[string] {
	return rulekit.Rule[string]{
		Code:    "hostname",
		Message: "must be a valid hostname",
		Check: func(v string) bool {
			if v == "" || len(v) > 253 {
				return false
			}
			return hostnameRegex.MatchString(v)
		},
	}
}
