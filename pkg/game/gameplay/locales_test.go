package gameplay

import (
	"testing"

	"github.com/leonelquinteros/gotext"

	"crystalhunt/pkg/game/entities"
)

func TestGermanCatalogueCoversMessages(t *testing.T) {
	po := gotext.NewPo()
	po.ParseFile("../../../locales/de/default.po")

	ids := []string{
		MsgIntro, MsgScore, MsgOpenDoor, MsgNeedScore, MsgNeedKey,
		MsgGunCollected, MsgMaskGained, MsgMaskRequired, MsgWaterWarning,
		MsgDied, MsgWin, MsgPickedUp,
	}
	for _, info := range entities.ItemTypes {
		ids = append(ids, info.Name)
		if info.Prompt != "" {
			ids = append(ids, info.Prompt)
		}
	}
	get := po.Get
	for _, id := range ids {
		if get(id) == id {
			t.Errorf("no German translation for %q", id)
		}
	}
}
