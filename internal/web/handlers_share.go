package web

import (
	"net/http"
	"strconv"

	"github.com/JonMunkholm/catalogo/internal/share"
)

// handleExport returns the quote message as plain text.
func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	text, err := s.engine.ExportText()
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte(text))
}

// handleShareLink returns the messaging link with the quote prefilled.
func (s *Server) handleShareLink(w http.ResponseWriter, r *http.Request) {
	link, text, err := s.shareLink()
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	writeJSON(w, map[string]string{
		"url":  link,
		"text": text,
	})
}

// handleShareQR returns the share link as a PNG QR code.
func (s *Server) handleShareQR(w http.ResponseWriter, r *http.Request) {
	link, _, err := s.shareLink()
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	png, err := share.QR(link, s.cfg.Export.QRSize, share.ParseLevel(s.cfg.Export.QRLevel))
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Length", strconv.Itoa(len(png)))
	w.Header().Set("Cache-Control", "no-store")
	w.Write(png)
}

func (s *Server) shareLink() (link, text string, err error) {
	text, err = s.engine.ExportText()
	if err != nil {
		return "", "", err
	}
	link, err = share.Link(s.cfg.Export.ShareBaseURL, text)
	if err != nil {
		return "", "", err
	}
	return link, text, nil
}
