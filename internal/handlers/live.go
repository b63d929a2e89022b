package handlers

//go:generate mockgen -source=live.go -destination=mock_live.go -package=handlers

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/sbilibin2017/prompt-gallery/internal/gallery"
	"github.com/sbilibin2017/prompt-gallery/internal/logger"
	"github.com/sbilibin2017/prompt-gallery/internal/models"
)

const (
	liveWriteWait  = 10 * time.Second
	livePingPeriod = 30 * time.Second
)

// Subscriber streams snapshots of the live collection.
type Subscriber interface {
	Subscribe(fn func([]models.Artwork)) (unsubscribe func())
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

// NewLiveArtworksHandler pushes the public gallery view over a websocket
// every time the collection changes. Slow clients only get the latest view.
// @Summary Live gallery
// @Description Websocket; each message is an ArtworkListResponse
// @Tags artworks
// @Param search query string false "Search text"
// @Param model query string false "Model filter"
// @Param sort query string false "newest or oldest"
// @Success 101
// @Router /artworks/live [get]
func NewLiveArtworksHandler(sub Subscriber) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := queryFromRequest(r, gallery.VisibilityPublic)

		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			logger.Log.Infow("websocket upgrade failed", "err", err)
			return
		}
		defer conn.Close()

		updates := make(chan []models.Artwork, 1)
		unsubscribe := sub.Subscribe(func(records []models.Artwork) {
			for {
				select {
				case updates <- records:
					return
				default:
				}
				select {
				case <-updates:
				default:
				}
			}
		})
		defer unsubscribe()

		closed := make(chan struct{})
		go func() {
			defer close(closed)
			for {
				if _, _, err := conn.ReadMessage(); err != nil {
					return
				}
			}
		}()

		ping := time.NewTicker(livePingPeriod)
		defer ping.Stop()

		for {
			select {
			case <-closed:
				return
			case records := <-updates:
				msg := ArtworkListResponse{
					Artworks: toPublicList(gallery.Derive(records, q)),
					Models:   gallery.Models(records),
				}
				conn.SetWriteDeadline(time.Now().Add(liveWriteWait))
				if err := conn.WriteJSON(msg); err != nil {
					logger.Log.Infow("websocket write failed", "err", err)
					return
				}
			case <-ping.C:
				if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(liveWriteWait)); err != nil {
					return
				}
			}
		}
	}
}
