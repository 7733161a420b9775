package payhere

import "testing"

func TestBuildPaymentRequest(t *testing.T) {
	g := New("1211149", "secret-key")
	fields := g.BuildPaymentRequest("42", 1460, "LKR", Customer{FirstName: "Nimal", Phone: "0771234567"})

	if fields.Amount != "1460.00" {
		t.Errorf("amount = %s, want 1460.00", fields.Amount)
	}
	if fields.MerchantID != "1211149" || fields.OrderID != "42" || fields.Currency != "LKR" {
		t.Errorf("fields wrong: %+v", fields)
	}
	if len(fields.Hash) != 32 {
		t.Errorf("hash length = %d, want 32", len(fields.Hash))
	}
	if fields.Hash != md5Upper("1211149"+"42"+"1460.00"+"LKR"+md5Upper("secret-key")) {
		t.Error("hash does not match the documented formula")
	}
}

func TestVerifyNotification(t *testing.T) {
	g := New("1211149", "secret-key")

	n := Notification{
		MerchantID: "1211149",
		OrderID:    "42",
		Amount:     "1460.00",
		Currency:   "LKR",
		StatusCode: CodeSuccess,
	}
	n.MD5Sig = md5Upper(n.MerchantID + n.OrderID + n.Amount + n.Currency + "2" + md5Upper("secret-key"))

	if !g.VerifyNotification(n) {
		t.Fatal("valid notification rejected")
	}

	tampered := n
	tampered.Amount = "9999.00"
	if g.VerifyNotification(tampered) {
		t.Error("tampered amount accepted")
	}

	wrongCode := n
	wrongCode.StatusCode = CodeFailed // code is signed too
	if g.VerifyNotification(wrongCode) {
		t.Error("tampered status code accepted")
	}

	otherMerchant := n
	otherMerchant.MerchantID = "999"
	if g.VerifyNotification(otherMerchant) {
		t.Error("foreign merchant id accepted")
	}
}

func TestIsSuccessCode(t *testing.T) {
	if !IsSuccessCode(CodeSuccess) {
		t.Error("2 must be success")
	}
	for _, c := range []int{CodePending, CodeCancelled, CodeFailed, CodeChargedback} {
		if IsSuccessCode(c) {
			t.Errorf("%d must not be success", c)
		}
	}
}
