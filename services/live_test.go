package services

import (
	"testing"

	"github.com/IamDalemark/energy-consumption-frontend/config"
	"github.com/IamDalemark/energy-consumption-frontend/models"
)

func TestLiveFeedSeqStrictlyIncreasing(t *testing.T) {
	feed := NewLiveFeed(nil, config.LiveConfig{PollIntervalSec: 60})
	ch := feed.Subscribe()
	defer feed.Unsubscribe(ch)

	rows := []models.DatasetRow{{BuildingType: models.BuildingResidential}}
	feed.Broadcast(rows)
	feed.Broadcast(rows)
	feed.Broadcast(rows)

	var last uint64
	for i := 0; i < 3; i++ {
		update := <-ch
		if update.Seq <= last {
			t.Errorf("frame %d seq = %d, want > %d", i, update.Seq, last)
		}
		last = update.Seq
		if update.Type != "dataset_update" {
			t.Errorf("frame type = %q, want dataset_update", update.Type)
		}
	}
}

func TestLiveFeedSlowSubscriberDoesNotBlock(t *testing.T) {
	feed := NewLiveFeed(nil, config.LiveConfig{PollIntervalSec: 60})
	ch := feed.Subscribe()
	defer feed.Unsubscribe(ch)

	// Channel buffer is 4; extra frames must be dropped, not block the feed.
	for i := 0; i < 10; i++ {
		feed.Broadcast(nil)
	}

	if got := len(ch); got != 4 {
		t.Errorf("buffered frames = %d, want 4", got)
	}
}

func TestLiveFeedUnsubscribe(t *testing.T) {
	feed := NewLiveFeed(nil, config.LiveConfig{PollIntervalSec: 60})
	ch := feed.Subscribe()
	feed.Unsubscribe(ch)

	feed.Broadcast(nil)
	if got := len(ch); got != 0 {
		t.Errorf("unsubscribed channel received %d frames", got)
	}
}
