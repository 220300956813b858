package router

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/mitchellh/mapstructure"
)

const maxFormMemory = 32 << 20

// bind fills a request struct from, in order of increasing precedence: query
// parameters, the form or JSON body, and path parameters. Field names follow
// the struct's json tags. File parts are left in the request for the handler
// to read.
func bind(req *http.Request, params []string, out any) error {
	values := map[string]any{}
	for k, v := range req.URL.Query() {
		if len(v) > 0 {
			values[k] = v[0]
		}
	}

	if req.Method != http.MethodGet {
		contentType := req.Header.Get("Content-Type")
		switch {
		case strings.HasPrefix(contentType, "application/json"):
			if req.Body != nil {
				err := json.NewDecoder(req.Body).Decode(out)
				if err != nil && err != io.EOF {
					return err
				}
			}

		case strings.HasPrefix(contentType, "multipart/form-data"):
			if err := req.ParseMultipartForm(maxFormMemory); err != nil {
				return err
			}

			for k, v := range req.MultipartForm.Value {
				if len(v) > 0 {
					values[k] = v[0]
				}
			}

		default:
			if err := req.ParseForm(); err != nil {
				return err
			}

			for k, v := range req.PostForm {
				if len(v) > 0 {
					values[k] = v[0]
				}
			}
		}
	}

	for _, p := range params {
		values[p] = req.PathValue(p)
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "json",
		WeaklyTypedInput: true,
		Result:           out,
	})
	if err != nil {
		return err
	}

	return decoder.Decode(values)
}
