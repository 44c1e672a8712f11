package main

import "net/http"

type Banner struct {
	Title string `json:"title"`
	Src   string `json:"src"`
	Text  string `json:"text"`
}

// listBannersHandler godoc
//
//	@Summary		List promotional banners
//	@Description	Static promotional banner descriptors for the front page
//	@Tags			catalog
//	@Produce		json
//	@Success		200	{array}	Banner
//	@Router			/banners [get]
func (app *application) listBannersHandler(w http.ResponseWriter, r *http.Request) {
	banners := []Banner{
		{
			Title: "Burger",
			Src:   app.staticURL("burger.jpg"),
			Text:  "Tasty Burger at your door step",
		},
		{
			Title: "Spices",
			Src:   app.staticURL("food.jpg"),
			Text:  "All Cuisines",
		},
		{
			Title: "New York",
			Src:   app.staticURL("tasty.jpg"),
			Text:  "Food is incomplete without a tasty dessert",
		},
	}

	if err := app.jsonRespone(w, http.StatusOK, banners); err != nil {
		app.internalServerError(w, r, err)
	}
}
