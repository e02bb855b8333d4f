package models

// DocumentTypeIdentityProof is the only document type whose verification
// cascades to the owning user's verification status.
const DocumentTypeIdentityProof = "identity_proof"

type VerificationDocument struct {
	DocumentID         string             `json:"document_id" bson:"document_id"`
	UserFirebaseUID    string             `json:"user_firebase_uid" bson:"user_firebase_uid"`
	DocumentType       string             `json:"document_type" bson:"document_type"`
	DocumentURL        string             `json:"document_url" bson:"document_url"`
	Status             VerificationStatus `json:"status" bson:"status"`
	VerifiedAt         *UTCTime           `json:"verified_at" bson:"verified_at"`
	VerifiedByAdminUID *string            `json:"verified_by_admin_uid" bson:"verified_by_admin_uid"`
	RejectionReason    *string            `json:"rejection_reason" bson:"rejection_reason"`
	CreatedAt          UTCTime            `json:"created_at" bson:"created_at"`
}

type VerificationDocumentCreate struct {
	DocumentID      string `json:"document_id"`
	UserFirebaseUID string `json:"user_firebase_uid"`
	DocumentType    string `json:"document_type"`
	DocumentURL     string `json:"document_url"`
}
