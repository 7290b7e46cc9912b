package handlers_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"shopmart/internal/cart"
	"shopmart/internal/repos"
)

func extractCookie(resp *http.Response, name string) *http.Cookie {
	for _, c := range resp.Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func formReq(path, form string) *http.Request {
	req := httptest.NewRequest("POST", path, strings.NewReader(form))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func TestHomePageRendersSeedCatalog(t *testing.T) {
	app, _ := newTestApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("want 200, got %d", resp.StatusCode)
	}
	body, _ := io.ReadAll(resp.Body)
	s := string(body)
	if !strings.Contains(s, "Wireless Mouse") || !strings.Contains(s, "Mechanical Gaming Keyboard") {
		t.Fatalf("seed products missing from home page")
	}
	if !strings.Contains(s, "Electronics") {
		t.Fatalf("category filter links missing")
	}
}

func TestProductDetailUnknownID(t *testing.T) {
	app, _ := newTestApp(t)

	resp, _ := app.Test(httptest.NewRequest("GET", "/product/zzz", nil))
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("want 404, got %d", resp.StatusCode)
	}
	body, _ := io.ReadAll(resp.Body)
	if !strings.Contains(string(body), "no longer available") {
		t.Fatalf("friendly 404 missing: %s", body)
	}
}

func TestCartAddUpdateRemoveFlow(t *testing.T) {
	app, _ := newTestApp(t)

	// add product 1 twice: one entry, quantity accumulates
	resp, err := app.Test(formReq("/cart", "productId=1&qty=2"))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusFound {
		t.Fatalf("want redirect after add, got %d", resp.StatusCode)
	}
	ck := extractCookie(resp, "cart")
	if ck == nil {
		t.Fatal("cart cookie not set")
	}

	req2 := formReq("/cart", "productId=1&qty=1")
	req2.AddCookie(&http.Cookie{Name: "cart", Value: ck.Value})
	resp2, _ := app.Test(req2)
	ck = extractCookie(resp2, "cart")

	ct := cart.Decode(ck.Value)
	if ct.Len() != 1 || ct.Items()[0].Quantity != 3 {
		t.Fatalf("cart state after two adds: %+v", ct.Items())
	}

	// cart page renders the item and totals
	view := httptest.NewRequest("GET", "/cart", nil)
	view.AddCookie(&http.Cookie{Name: "cart", Value: ck.Value})
	respView, _ := app.Test(view)
	body, _ := io.ReadAll(respView.Body)
	if !strings.Contains(string(body), "Wireless Bluetooth Headphones") {
		t.Fatalf("cart page missing item: %s", body)
	}

	// setting quantity to zero removes the entry
	upd := formReq("/cart/update", "productId=1&qty=0")
	upd.AddCookie(&http.Cookie{Name: "cart", Value: ck.Value})
	respUpd, _ := app.Test(upd)
	ck = extractCookie(respUpd, "cart")
	if got := cart.Decode(ck.Value); got.Len() != 0 {
		t.Fatalf("quantity 0 should remove the entry: %+v", got.Items())
	}
}

func TestCheckoutPlacesOrderAndClearsCart(t *testing.T) {
	app, db := newTestApp(t)

	p, err := repos.NewProductRepo(db).Get("1")
	if err != nil {
		t.Fatal(err)
	}
	ct := cart.New()
	ct.Add(p, 2)

	form := "firstName=Ada&lastName=L&email=ada%40example.com&phone=555&address=1+Main+St&city=Springfield&state=IL&zipCode=62701&country=USA"
	req := formReq("/checkout", form)
	req.AddCookie(&http.Cookie{Name: "cart", Value: ct.Encode()})

	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("want 200, got %d", resp.StatusCode)
	}
	body, _ := io.ReadAll(resp.Body)
	if !strings.Contains(string(body), "Order Placed Successfully") {
		t.Fatalf("confirmation missing: %s", body)
	}

	if n, _ := repos.NewOrderRepo(db).Count(); n != 1 {
		t.Fatalf("want 1 stored order, got %d", n)
	}

	// the cart cookie must be expired by the response
	ck := extractCookie(resp, "cart")
	if ck == nil || ck.Value != "" {
		t.Fatalf("cart cookie not cleared: %+v", ck)
	}
}

func TestCheckoutWithEmptyCartRedirects(t *testing.T) {
	app, _ := newTestApp(t)

	resp, _ := app.Test(httptest.NewRequest("GET", "/checkout", nil))
	if resp.StatusCode != http.StatusFound {
		t.Fatalf("want redirect to /cart, got %d", resp.StatusCode)
	}
	if loc := resp.Header.Get("Location"); loc != "/cart" {
		t.Fatalf("want /cart, got %q", loc)
	}
}

func TestAdminCreateEditDelete(t *testing.T) {
	app, db := newTestApp(t)
	prods := repos.NewProductRepo(db)

	// create via admin form (string fields throughout)
	resp, err := app.Test(formReq("/admin/products",
		"name=Desk+Lamp&price=19.99&originalPrice=&discount=&category=Home&description=LED+lamp&image=&stock=12&rating=0&reviews=0&sold=0"))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusFound {
		t.Fatalf("want redirect after create, got %d", resp.StatusCode)
	}
	p, err := prods.Get("9")
	if err != nil {
		t.Fatal(err)
	}
	if p.Name != "Desk Lamp" || p.Price != 19.99 || p.OriginalPrice != 19.99 || p.Stock != 12 {
		t.Fatalf("admin create stored wrong product: %+v", p)
	}

	// edit
	resp, _ = app.Test(formReq("/admin/products/9",
		"name=Desk+Lamp+Pro&price=24.99&originalPrice=29.99&discount=17&category=Home&description=LED+lamp&image=&stock=12&rating=0&reviews=0&sold=0"))
	if resp.StatusCode != http.StatusFound {
		t.Fatalf("want redirect after edit, got %d", resp.StatusCode)
	}
	p, _ = prods.Get("9")
	if p.Name != "Desk Lamp Pro" || p.Price != 24.99 || p.Discount != 17 {
		t.Fatalf("admin edit not applied: %+v", p)
	}

	// delete
	resp, _ = app.Test(formReq("/admin/products/9/delete", ""))
	if resp.StatusCode != http.StatusFound {
		t.Fatalf("want redirect after delete, got %d", resp.StatusCode)
	}
	if n, _ := prods.Count(); n != 8 {
		t.Fatalf("want seed size back, got %d", n)
	}
}
