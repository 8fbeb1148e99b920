package scrape

import (
	"context"
	"errors"
	"sync"

	"github.com/brogergvhs/mangaread/internal/providers"
	"github.com/brogergvhs/mangaread/internal/util"
)

// fakeFetcher serves canned bodies keyed by URL and records every request.
type fakeFetcher struct {
	mu     sync.Mutex
	pages  map[string]string
	final  map[string]string
	err    error
	called []string
}

func (f *fakeFetcher) Fetch(_ context.Context, target string) (*util.Page, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.called = append(f.called, target)
	if f.err != nil {
		return nil, f.err
	}

	body, ok := f.pages[target]
	if !ok {
		return nil, &util.TransportError{URL: target, StatusCode: 404, Err: errors.New("404 Not Found")}
	}

	final := target
	if u, ok := f.final[target]; ok {
		final = u
	}

	return &util.Page{URL: final, Body: []byte(body)}, nil
}

func newTestScraper(pages map[string]string) (*Scraper, *fakeFetcher) {
	f := &fakeFetcher{pages: pages}
	return New(f, providers.MangaReader(), nil), f
}

func ptr[T any](v T) *T {
	return &v
}

const homeURL = "https://mangareader.to/home"

const homeHTML = `<html><body>
<div class="deslide-wrap"><div id="slider"><div class="swiper-wrapper">
  <div class="swiper-slide">
    <div class="desi-head-title"><a href="/one-piece-3">One Piece</a></div>
    <img class="manga-poster-img" src="https://img.example/one-piece.jpg">
    <div class="desi-sub-text">Chapter 1100</div>
    <div class="sc-detail">
      <div class="scd-item"> Gol D. Roger was known as the Pirate King. </div>
      <div class="scd-genres"><span>Action</span><span>Adventure</span></div>
    </div>
  </div>
  <div class="swiper-slide">
    <div class="desi-head-title"><a href="/berserk-2/">Berserk</a></div>
    <div class="desi-sub-text">Latest</div>
  </div>
</div></div></div>

<div id="manga-trending"><div class="swiper-wrapper">
  <div class="swiper-slide">
    <div class="anime-name"> Chainsaw Man </div>
    <a class="link-mask" href="/chainsaw-man-96/"></a>
    <img class="manga-poster-img" src="https://img.example/csm.jpg">
    <div class="mp-desc">
      <p>Chainsaw Man</p>
      <p>8.7</p>
      <p>EN/JA</p>
      <p>Chap 170</p>
      <p>Vol. 16</p>
    </div>
  </div>
  <div class="swiper-slide">
    <div class="anime-name">Blue Lock</div>
    <div class="mp-desc">
      <p>Blue Lock</p>
      <p>N/A</p>
      <p>EN</p>
      <p>1,204 chapters</p>
    </div>
  </div>
  <div class="swiper-slide"></div>
</div></div>

<div id="main-sidebar">
  <div id="chart-today"><ul>
    <li>
      <img class="manga-poster-img" src="https://img.example/200x300/naruto.jpg">
      <div class="manga-detail">
        <h3 class="manga-name"><a href="/naruto-7">Naruto</a></h3>
        <div class="fd-infor"><span class="fdi-item fdi-view">85310 views</span></div>
        <div class="fd-infor"><span class="fdi-chapter">Chap 700</span><span class="fdi-chapter">Vol 72</span></div>
        <div class="fd-infor"><span class="fdi-cate"><a>Action</a><a>Martial Arts</a></span></div>
      </div>
    </li>
    <li>
      <div class="manga-detail"><h3 class="manga-name"><a>Untitled</a></h3></div>
    </li>
  </ul></div>
  <div id="chart-week"><ul>
    <li><div class="manga-detail"><h3 class="manga-name"><a href="/bleach-5">Bleach</a></h3></div></li>
  </ul></div>
</div>
</body></html>`

const searchHTML = `<html><body><div class="manga_list-sbs"><div class="mls-wrap">
  <div class="item item-spc">
    <div class="manga-poster">
      <span class="tick-lang">EN/JA</span>
      <img src="https://img.example/op.jpg">
    </div>
    <div class="manga-detail">
      <h3 class="manga-name"><a href="/one-piece-3">One Piece</a></h3>
      <div class="fd-infor"><span><a href="/genre/action">Action</a>, <a href="/genre/comedy">Comedy</a></span></div>
      <div class="fd-list-wrap">
        <div class="fd-list"><div class="fdl-item"><div class="chapter"><a href="/read/one-piece-3/en/chapter-45">Chapter 45 [EN]</a></div></div></div>
        <div class="fd-list"><div class="fdl-item"><div class="chapter"><a>Volume 3 [JA]</a></div></div></div>
      </div>
    </div>
  </div>
  <div class="item item-spc">
    <div class="manga-detail">
      <h3 class="manga-name"><a href="/one-piece-party">One Piece Party</a></h3>
    </div>
  </div>
</div></div></body></html>`

const detailHTML = `<html><body><div id="ani_detail">
  <div class="anisc-poster"><img class="manga-poster-img" src="https://img.example/op-full.jpg"></div>
  <div class="anisc-detail">
    <h2 class="manga-name">One Piece</h2>
    <div class="manga-name-or">ワンピース</div>
    <div class="sort-desc">
      <div class="genres"><a href="/genre/action">Action</a><a href="/genre/fantasy">Fantasy</a></div>
      <div class="description">  Monkey D. Luffy sets off to find the One Piece.  </div>
    </div>
    <div class="anisc-info">
      <div class="item"><span class="item-head">Type:</span> <a class="name">Manga</a></div>
      <div class="item"><span class="item-head">Status:</span> <span class="name">Publishing</span></div>
      <div class="item"><span class="item-head">Authors:</span> <a>Oda, Eiichiro</a>, <a>Someone Else</a></div>
      <div class="item"><span class="item-head">Published:</span> <span class="name">Jul 22, 1997 to ?</span></div>
      <div class="item"><span class="item-head">Score:</span> <span class="name">9.07</span></div>
      <div class="item"><span class="item-head">Views:</span> <span class="name">3,546,354</span></div>
    </div>
  </div>
</div></body></html>`
