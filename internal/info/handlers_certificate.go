package info

import (
	"context"

	"github.com/giantswarm/mcp-powerscale/internal/onefs"
)

// fetchServerCertificate lists the installed TLS server certificates and
// marks the one the certificate settings name as the default HTTPS
// certificate.
func fetchServerCertificate(ctx context.Context, client onefs.Client, _ *RequestContext) (any, error) {
	resp, err := client.ListServerCertificates(ctx)
	if err != nil {
		return nil, newFetchError(CategoryServerCertificate, client.Host(), err)
	}
	settings, err := client.GetCertificateSettings(ctx)
	if err != nil {
		return nil, newFetchError(CategoryServerCertificate, client.Host(), err)
	}

	defaultID, _ := settings["default_https_certificate"].(string)
	certificates := make([]map[string]any, 0, len(resp.Certificates))
	for _, certificate := range resp.Certificates {
		annotated := make(map[string]any, len(certificate)+1)
		for k, v := range certificate {
			annotated[k] = v
		}
		id, _ := certificate["id"].(string)
		annotated["default"] = defaultID != "" && id == defaultID
		certificates = append(certificates, annotated)
	}
	return certificates, nil
}
