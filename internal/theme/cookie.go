package theme

import (
	"net/http"
	"time"
)

// cookieMaxAge keeps the preference for a year.
const cookieMaxAge = 365 * 24 * time.Hour

// Cookie builds the cookie that persists a preference. It is readable
// from page scripts so the client and server agree on the value.
func Cookie(key, value string) *http.Cookie {
	return &http.Cookie{
		Name:     key,
		Value:    value,
		Path:     "/",
		MaxAge:   int(cookieMaxAge.Seconds()),
		SameSite: http.SameSiteLaxMode,
		HttpOnly: false,
	}
}

// CookieStorage is a Storage backed by the cookies of one request and
// its response.
type CookieStorage struct {
	r       *http.Request
	w       http.ResponseWriter
	written map[string]string
}

func NewCookieStorage(w http.ResponseWriter, r *http.Request) *CookieStorage {
	return &CookieStorage{r: r, w: w, written: map[string]string{}}
}

func (c *CookieStorage) Get(key string) (string, bool) {
	if v, ok := c.written[key]; ok {
		return v, true
	}
	ck, err := c.r.Cookie(key)
	if err != nil {
		return "", false
	}
	return ck.Value, true
}

func (c *CookieStorage) Set(key, value string) {
	c.written[key] = value
	http.SetCookie(c.w, Cookie(key, value))
}

// CookieLine is a Storage over a raw Cookie header line, the shape
// document.cookie has in the browser. write receives each Set-Cookie
// string.
type CookieLine struct {
	read  func() string
	write func(string)
}

func NewCookieLine(read func() string, write func(string)) *CookieLine {
	return &CookieLine{read: read, write: write}
}

func (c *CookieLine) Get(key string) (string, bool) {
	cookies, err := http.ParseCookie(c.read())
	if err != nil {
		return "", false
	}
	for _, ck := range cookies {
		if ck.Name == key {
			return ck.Value, true
		}
	}
	return "", false
}

func (c *CookieLine) Set(key, value string) {
	c.write(Cookie(key, value).String())
}
