/*
Copyright © 2025 Jorge C. Riveros
SPDX-License-Identifier: Apache-2.0
*/
package apic

import (
	"context"
	"encoding/xml"
	"net/http"

	"github.com/jcriveros/devaci/pkg/errors"
	"github.com/jcriveros/devaci/pkg/mit"
)

// Format selects the commit wire encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatXML  Format = "xml"
)

// xmlImdata is the XML flavor of the controller response envelope.
type xmlImdata struct {
	XMLName xml.Name `xml:"imdata"`
	Errors  []struct {
		Code string `xml:"code,attr"`
		Text string `xml:"text,attr"`
	} `xml:"error"`
}

// Commit posts a configuration request against the policy universe. All
// objects land in one transaction: the controller applies the whole tree or
// none of it.
func (c *Client) Commit(ctx context.Context, req *mit.ConfigRequest, format Format) error {
	if req == nil || req.Empty() {
		return errors.New(errors.ErrCodeCommit, "nothing to commit")
	}

	var (
		body        []byte
		path        string
		contentType string
		err         error
	)
	switch format {
	case FormatXML:
		body, err = req.XMLData()
		path, contentType = "/api/mo/uni.xml", contentXML
	default:
		body, err = req.Data()
		path, contentType = "/api/mo/uni.json", contentJSON
	}
	if err != nil {
		return errors.Wrap(errors.ErrCodeCommit, "encoding commit body failed", err)
	}

	data, status, err := c.do(ctx, http.MethodPost, path, contentType, body)
	if err != nil {
		return err
	}
	if status != http.StatusOK {
		reason := faultText(data, status)
		if format == FormatXML {
			var im xmlImdata
			if xml.Unmarshal(data, &im) == nil && len(im.Errors) > 0 {
				reason = im.Errors[0].Text
			}
		}
		return errors.NewWithContext(errors.ErrCodeCommit, "commit rejected", map[string]any{
			"host":    c.host,
			"status":  status,
			"objects": req.Count(),
			"reason":  reason,
		})
	}

	c.log.Info("configuration committed",
		"host", c.host,
		"objects", req.Count())
	return nil
}
