package station

import (
	"testing"
	"time"

	"evstation/ocpp/files"
	"evstation/ocpp/smartcharging"
	"evstation/ocpp/transactions"
	"evstation/types"
)

func profile(id int) types.ChargingProfile {
	return types.ChargingProfile{
		Id:                     id,
		StackLevel:             0,
		ChargingProfilePurpose: types.ChargingProfilePurposeTxDefaultProfile,
		ChargingProfileKind:    types.ChargingProfileKindAbsolute,
	}
}

func TestSetChargingProfileUnknownEvse(t *testing.T) {
	h := newTestHandler()
	response := h.OnSetChargingProfile(&smartcharging.SetChargingProfileRequest{
		EvseId:          99,
		ChargingProfile: profile(1),
	})
	if response.Status != smartcharging.ChargingProfileStatusRejected {
		t.Errorf("status = %s, want Rejected", response.Status)
	}
}

func TestGetChargingProfilesUnknownEvse(t *testing.T) {
	h := newTestHandler()
	response := h.OnGetChargingProfiles(&smartcharging.GetChargingProfilesRequest{
		RequestId: 1,
		EvseId:    intPtr(99),
	})
	if response.Status != smartcharging.GetChargingProfileStatusNoProfiles {
		t.Errorf("status = %s, want NoProfiles", response.Status)
	}
}

func TestChargingProfileSetGetClear(t *testing.T) {
	h := newTestHandler()
	set := h.OnSetChargingProfile(&smartcharging.SetChargingProfileRequest{
		EvseId:          1,
		ChargingProfile: profile(11),
	})
	if set.Status != smartcharging.ChargingProfileStatusAccepted {
		t.Fatalf("set status = %s, want Accepted", set.Status)
	}
	get := h.OnGetChargingProfiles(&smartcharging.GetChargingProfilesRequest{
		RequestId: 1,
		EvseId:    intPtr(1),
	})
	if get.Status != smartcharging.GetChargingProfileStatusAccepted {
		t.Fatalf("get status = %s, want Accepted", get.Status)
	}
	clear := h.OnClearChargingProfile(&smartcharging.ClearChargingProfileRequest{
		ChargingProfileId: intPtr(11),
	})
	if clear.Status != smartcharging.ClearChargingProfileStatusAccepted {
		t.Fatalf("clear status = %s, want Accepted", clear.Status)
	}
	again := h.OnClearChargingProfile(&smartcharging.ClearChargingProfileRequest{
		ChargingProfileId: intPtr(11),
	})
	if again.Status != smartcharging.ClearChargingProfileStatusUnknown {
		t.Errorf("second clear status = %s, want Unknown", again.Status)
	}
}

func TestUsePriorityCharging(t *testing.T) {
	h := newTestHandler()
	start := h.OnRequestStartTransaction(&transactions.RequestStartTransactionRequest{
		EvseId:        intPtr(1),
		RemoteStartId: 1,
		IdToken:       startToken(),
	})
	noProfile := h.OnUsePriorityCharging(&smartcharging.UsePriorityChargingRequest{
		TransactionId: start.TransactionId,
		Activate:      true,
	})
	if noProfile.Status != smartcharging.PriorityChargingStatusNoProfile {
		t.Errorf("status without profile = %s, want NoProfile", noProfile.Status)
	}
	unknown := h.OnUsePriorityCharging(&smartcharging.UsePriorityChargingRequest{
		TransactionId: "missing",
		Activate:      true,
	})
	if unknown.Status != smartcharging.PriorityChargingStatusRejected {
		t.Errorf("status for unknown transaction = %s, want Rejected", unknown.Status)
	}
}

func TestFileOperations(t *testing.T) {
	h := newTestHandler()
	get := h.OnGetFile(&files.GetFileRequest{FileName: "/hello/world.txt"})
	if get.Status != files.FileStatusAccepted {
		t.Fatalf("get status = %s, want Accepted", get.Status)
	}
	if string(get.FileContent) != "Hello world!" {
		t.Errorf("content = %q, want Hello world!", string(get.FileContent))
	}
	missing := h.OnGetFile(&files.GetFileRequest{FileName: "/hello/missing.txt"})
	if missing.Status != files.FileStatusNotFound {
		t.Errorf("missing file status = %s, want NotFound", missing.Status)
	}
	listing := h.OnListDirectory(&files.ListDirectoryRequest{Directory: "/hello"})
	if listing.Status != files.FileStatusAccepted || len(listing.Listing) != 1 || listing.Listing[0] != "world.txt" {
		t.Errorf("listing = %v (%s), want [world.txt] Accepted", listing.Listing, listing.Status)
	}
	badDir := h.OnListDirectory(&files.ListDirectoryRequest{Directory: "/tmp"})
	if badDir.Status != files.FileStatusNotFound {
		t.Errorf("unknown directory status = %s, want NotFound", badDir.Status)
	}
}

func TestSetChargingProfileBroadcast(t *testing.T) {
	h := newTestHandler()
	response := h.OnSetChargingProfile(&smartcharging.SetChargingProfileRequest{
		EvseId:          0,
		ChargingProfile: profile(10),
	})
	if response.Status != smartcharging.ChargingProfileStatusAccepted {
		t.Fatalf("broadcast status = %s, want Accepted", response.Status)
	}
	for _, evse := range h.allEVSEs() {
		got := evse.GetChargingProfile()
		if got == nil || got.Id != 10 {
			t.Errorf("evse %d: profile = %+v, want id 10 on every EVSE", evse.Id, got)
		}
	}
}

func TestSetChargingProfileBroadcastTransactionFilter(t *testing.T) {
	h := newTestHandler()
	start := h.OnRequestStartTransaction(&transactions.RequestStartTransactionRequest{
		EvseId:        intPtr(1),
		RemoteStartId: 3,
		IdToken:       startToken(),
	})
	if start.Status != transactions.RequestStartStopStatusAccepted {
		t.Fatalf("start status = %s, want Accepted", start.Status)
	}
	scoped := profile(11)
	scoped.TransactionId = start.TransactionId
	response := h.OnSetChargingProfile(&smartcharging.SetChargingProfileRequest{
		EvseId:          0,
		ChargingProfile: scoped,
	})
	if response.Status != smartcharging.ChargingProfileStatusAccepted {
		t.Fatalf("broadcast status = %s, want Accepted", response.Status)
	}
	owner := h.EVSE(1)
	if got := owner.GetChargingProfile(); got == nil || got.Id != 11 {
		t.Errorf("owning evse: profile = %+v, want id 11", got)
	}
	if got := h.EVSE(2).GetChargingProfile(); got != nil {
		t.Errorf("other evse: profile = %+v, want none for a scoped broadcast", got)
	}
	time.Sleep(2 * transactionEventDelay)
}
