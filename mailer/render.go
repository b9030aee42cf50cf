package mailer

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

// Raw HTML in the content is dropped by goldmark (no WithUnsafe), so
// provider output can never inject markup into the message.
var md = goldmark.New(
	goldmark.WithExtensions(extension.Linkify, extension.Strikethrough),
	goldmark.WithRendererOptions(html.WithHardWraps()),
)

const (
	wrapperOpen  = `<div style="font-family: Arial, sans-serif;">`
	wrapperClose = `</div>`
)

// RenderHTML converts the markdown-ish idea text into the HTML part of an email.
func RenderHTML(content string) (string, error) {
	body, err := mdToHTML(content)
	if err != nil {
		return "", err
	}
	return wrapperOpen + normalizeForEmail(body) + wrapperClose, nil
}

func mdToHTML(src string) (string, error) {
	var buf bytes.Buffer
	if err := md.Convert([]byte(src), &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

var headingRe = regexp.MustCompile(`(?s)<h([1-6])[^>]*>(.*?)</h[1-6]>`)

var headingSizes = map[string]string{
	"1": "22px",
	"2": "20px",
	"3": "18px",
	"4": "16px",
	"5": "15px",
	"6": "14px",
}

// Many webmail clients drop <style> blocks and restyle headings, so headings
// become paragraphs carrying inline sizes.
func normalizeForEmail(body string) string {
	return headingRe.ReplaceAllStringFunc(body, func(block string) string {
		parts := headingRe.FindStringSubmatch(block)
		if len(parts) != 3 {
			return block
		}
		size := headingSizes[parts[1]]
		if size == "" {
			size = "16px"
		}
		text := strings.TrimSpace(parts[2])
		return fmt.Sprintf(`<p style="font-size:%s;font-weight:700;margin:1em 0 0.5em;">%s</p>`, size, text)
	})
}
