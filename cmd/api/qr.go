package main

import (
	"net/http"

	qrcode "github.com/skip2/go-qrcode"
)

// menuQRHandler godoc
//
//	@Summary		Menu QR code
//	@Description	PNG QR code pointing at the public ordering page
//	@Tags			catalog
//	@Produce		png
//	@Success		200	{file}		binary
//	@Failure		500	{object}	map[string]string
//	@Router			/menu/qr [get]
func (app *application) menuQRHandler(w http.ResponseWriter, r *http.Request) {
	png, err := qrcode.Encode(app.config.frontendURL, qrcode.Medium, 256)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(png)
}
