package repo

import "testing"

func TestReflog_RecordsMovementsNewestFirst(t *testing.T) {
	r := newTestRepo(t)
	c1 := commitFile(t, r, "1", "one")
	c2 := commitFile(t, r, "2", "two")

	log := r.Reflog("HEAD")
	if len(log) != 2 {
		t.Fatalf("reflog length = %d, want 2", len(log))
	}
	if log[0].NewHash != c2 || log[0].OldHash != c1 || log[0].Reason != "commit" {
		t.Errorf("log[0] = %+v", log[0])
	}
	if log[1].NewHash != c1 || log[1].OldHash != "" || log[1].Reason != "commit (initial)" {
		t.Errorf("log[1] = %+v", log[1])
	}
	if log[0].Timestamp <= log[1].Timestamp {
		t.Errorf("timestamps not increasing: %d then %d", log[1].Timestamp, log[0].Timestamp)
	}
}

func TestReflog_DeleteEntry(t *testing.T) {
	r := newTestRepo(t)
	c := commitFile(t, r, "1", "one")
	r.CreateBranch("topic")
	r.DeleteBranch("topic")

	log := r.Reflog("topic")
	if len(log) != 2 {
		t.Fatalf("reflog length = %d, want 2", len(log))
	}
	if log[0].Reason != "delete" || log[0].OldHash != c || log[0].NewHash != "" {
		t.Errorf("delete entry = %+v", log[0])
	}
	if log[1].Reason != "branch" || log[1].NewHash != c {
		t.Errorf("create entry = %+v", log[1])
	}
}

func TestReflog_UnknownRefEmpty(t *testing.T) {
	r := newTestRepo(t)
	if got := r.Reflog("nope"); len(got) != 0 {
		t.Errorf("Reflog(nope) = %v, want empty", got)
	}
}

func TestReflog_ReturnsCopy(t *testing.T) {
	r := newTestRepo(t)
	commitFile(t, r, "1", "one")

	log := r.Reflog("main")
	log[0].Reason = "tampered"
	if got := r.Reflog("main")[0].Reason; got != "commit (initial)" {
		t.Errorf("Reason = %q after caller mutation", got)
	}
}
