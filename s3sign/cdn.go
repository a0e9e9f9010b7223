// s3sign/cdn.go
package s3sign

import (
	"net/url"
	"strings"
)

// Rewrite troca o host de uma URL assinada pelo alias de CDN adequado à
// região do chamador: host encaminhado terminando em ".cn" usa o alias CN,
// qualquer outro usa o padrão.
//
// Isto é apresentação, não segurança: se a URL não parsear (ou não houver
// alias configurado), devolvemos a URL assinada original em vez de falhar o
// request.
func Rewrite(signedURL, forwardedHost, defaultHost, cnHost string) string {
	target := defaultHost
	if isCNHost(forwardedHost) {
		target = cnHost
	}
	if target == "" {
		return signedURL
	}

	u, err := url.Parse(signedURL)
	if err != nil || u.Host == "" {
		return signedURL
	}

	u.Host = target
	return u.String()
}

func isCNHost(forwardedHost string) bool {
	host := strings.ToLower(strings.TrimSpace(forwardedHost))
	// Remove a porta, se presente
	if i := strings.LastIndex(host, ":"); i >= 0 && !strings.Contains(host[i:], "]") {
		host = host[:i]
	}
	return strings.HasSuffix(host, ".cn")
}
