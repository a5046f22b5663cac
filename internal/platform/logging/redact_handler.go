package logging

import (
	"log/slog"
	"regexp"
	"strings"

	"github.com/m-mizutani/masq"
)

// CredentialHeaders are the canonical names of headers that carry
// credentials. The HTTP logging middleware masks them, and an attribute
// named after one (in either spelling) is redacted here as well.
var CredentialHeaders = []string{
	"Authorization",
	"Proxy-Authorization",
	"Cookie",
	"Set-Cookie",
	"X-Api-Key",
}

// personalFields name attributes holding password material, tokens or
// personal data. masq matches names exactly, hence both spellings.
var personalFields = []string{
	"password", "Password",
	"confirm_password", "ConfirmPassword",
	"password_hash", "PasswordHash",
	"token", "Token", "access_token",
	"secret",
	"tax_id", "TaxID",
	"phone", "Phone",
}

// Values redacted wherever they appear, in case one is formatted into a
// message or an unlisted field.
var (
	bearerValue = regexp.MustCompile(`(?i)bearer\s+[a-zA-Z0-9\-._~+/]+=*`)
	// Three base64url segments of ten or more characters; shorter dotted
	// strings such as versions are left alone.
	jwtValue    = regexp.MustCompile(`[a-zA-Z0-9\-_]{10,}\.[a-zA-Z0-9\-_]{10,}\.[a-zA-Z0-9\-_]{10,}`)
	bcryptValue = regexp.MustCompile(`\$2[abxy]?\$\d{2}\$[./A-Za-z0-9]{53}`)
)

func newRedactAttr() func([]string, slog.Attr) slog.Attr {
	var opts []masq.Option
	for _, h := range CredentialHeaders {
		opts = append(opts, masq.WithFieldName(h), masq.WithFieldName(strings.ToLower(h)))
	}
	for _, f := range personalFields {
		opts = append(opts, masq.WithFieldName(f))
	}
	for _, prefix := range []string{"secret_", "jwt_"} {
		opts = append(opts, masq.WithFieldPrefix(prefix))
	}
	for _, re := range []*regexp.Regexp{bearerValue, jwtValue, bcryptValue} {
		opts = append(opts, masq.WithRegex(re))
	}
	return masq.New(opts...)
}
