package domain

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestDiffFields(t *testing.T) {
	snapshot := JSON{
		"bankName":          "HDFC Main",
		"accountHolderName": "R. Sharma",
		"ifscCode":          "HDFC0001234",
	}

	tests := []struct {
		name     string
		proposed JSON
		want     []string
	}{
		{
			name:     "only changed fields survive",
			proposed: JSON{"bankName": "HDFC Main", "ifscCode": "HDFC0009999"},
			want:     []string{"ifscCode"},
		},
		{
			name:     "new fields count as changed",
			proposed: JSON{"upiId": "house@hdfc"},
			want:     []string{"upiId"},
		},
		{
			name:     "identical proposal yields nil diff",
			proposed: JSON{"bankName": "HDFC Main"},
			want:     nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			diff := DiffFields(snapshot, tt.proposed)

			if len(diff) != len(tt.want) {
				t.Fatalf("expected %d changed fields, got %d (%v)", len(tt.want), len(diff), diff)
			}
			for _, key := range tt.want {
				if _, ok := diff[key]; !ok {
					t.Errorf("expected %q in diff", key)
				}
			}
		})
	}
}

func TestMergeKeepsAbsentFields(t *testing.T) {
	bank := &Bank{
		ID:                "B1",
		Name:              "HDFC Main",
		AccountHolderName: "R. Sharma",
		AccountNumber:     "50100123",
		IFSCCode:          "HDFC0001234",
	}

	err := Merge(bank, JSON{"ifscCode": "HDFC0009999"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if bank.IFSCCode != "HDFC0009999" {
		t.Errorf("expected updated IFSC, got %q", bank.IFSCCode)
	}
	if bank.AccountHolderName != "R. Sharma" {
		t.Errorf("expected holder name to be kept, got %q", bank.AccountHolderName)
	}
	if bank.AccountNumber != "50100123" {
		t.Errorf("expected account number to be kept, got %q", bank.AccountNumber)
	}
}

func TestMergeDecimalFields(t *testing.T) {
	txn := &Transaction{
		ID:     "T1",
		Type:   EntryWithdraw,
		Amount: decimal.NewFromInt(50),
	}

	if err := Merge(txn, JSON{"amount": "75.25", "remark": "corrected"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !txn.Amount.Equal(decimal.RequireFromString("75.25")) {
		t.Errorf("expected amount 75.25, got %s", txn.Amount)
	}
	if txn.Remark != "corrected" {
		t.Errorf("expected remark to be merged, got %q", txn.Remark)
	}
	if txn.Type != EntryWithdraw {
		t.Errorf("expected type to be kept, got %q", txn.Type)
	}
}

func TestMergeNoChangesIsNoop(t *testing.T) {
	site := &Website{ID: "W1", Name: "playbook365"}

	if err := Merge(site, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if site.Name != "playbook365" {
		t.Errorf("expected name unchanged, got %q", site.Name)
	}
}

func TestApprovalMessage(t *testing.T) {
	got := ApprovalMessage("Withdraw", OperationDelete)
	want := "Withdraw is sent to Super Admin for delete approval"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}

	got = ApprovalMessage("Bank", OperationEdit)
	want = "Bank is sent to Super Admin for edit approval"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}
