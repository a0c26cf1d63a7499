package domain

// OrderStatus is the lifecycle status of an order.
type OrderStatus string

const (
	OrderPending         OrderStatus = "PENDING"
	OrderPreAnnounced    OrderStatus = "PRE_ANNOUNCED"
	OrderReceivedInChina OrderStatus = "RECEIVED_IN_CHINA"
	OrderInTransit       OrderStatus = "IN_TRANSIT"
	OrderArrivedMN       OrderStatus = "ARRIVED_MN"
	OrderReadyForPickup  OrderStatus = "READY_FOR_PICKUP"
	OrderDelivered       OrderStatus = "DELIVERED"
	OrderCancelled       OrderStatus = "CANCELLED"
)

// PackageStatus is one stage of the package lifecycle; see Stages for the order.
type PackageStatus string

const (
	PackagePending         PackageStatus = "PENDING"
	PackagePreAnnounced    PackageStatus = "PRE_ANNOUNCED"
	PackageReceivedInChina PackageStatus = "RECEIVED_IN_CHINA"
	PackageMeasured        PackageStatus = "MEASURED"
	PackageCategorized     PackageStatus = "CATEGORIZED"
	PackageShelvedChina    PackageStatus = "SHELVED_CHINA"
	PackageBatched         PackageStatus = "BATCHED"
	PackageDeparted        PackageStatus = "DEPARTED"
	PackageInTransit       PackageStatus = "IN_TRANSIT"
	PackageAtCustoms       PackageStatus = "AT_CUSTOMS"
	PackageCustomsCleared  PackageStatus = "CUSTOMS_CLEARED"
	PackageArrivedMN       PackageStatus = "ARRIVED_MN"
	PackageShelvedMN       PackageStatus = "SHELVED_MN"
	PackageReadyForPickup  PackageStatus = "READY_FOR_PICKUP"
	PackageDelivered       PackageStatus = "DELIVERED"
)

// BatchStatus is the lifecycle status of a transport batch.
type BatchStatus string

const (
	BatchOpen     BatchStatus = "OPEN"
	BatchClosed   BatchStatus = "CLOSED"
	BatchDeparted BatchStatus = "DEPARTED"
	BatchArrived  BatchStatus = "ARRIVED"
	BatchUnloaded BatchStatus = "UNLOADED"
)

// ReturnStatus is the lifecycle status of a return request.
type ReturnStatus string

const (
	ReturnOpened      ReturnStatus = "OPENED"
	ReturnUnderReview ReturnStatus = "UNDER_REVIEW"
	ReturnApproved    ReturnStatus = "APPROVED"
	ReturnRejected    ReturnStatus = "REJECTED"
	ReturnResolved    ReturnStatus = "RESOLVED"
)

// VerificationStatus is the state of a verification request or of a user's verification.
type VerificationStatus string

const (
	VerificationNotSubmitted VerificationStatus = "NOT_SUBMITTED"
	VerificationPending      VerificationStatus = "PENDING"
	VerificationApproved     VerificationStatus = "APPROVED"
	VerificationRejected     VerificationStatus = "REJECTED"
)

// InvoiceStatus is the lifecycle status of an invoice.
type InvoiceStatus string

const (
	InvoiceDraft     InvoiceStatus = "DRAFT"
	InvoiceIssued    InvoiceStatus = "ISSUED"
	InvoicePaid      InvoiceStatus = "PAID"
	InvoiceOverdue   InvoiceStatus = "OVERDUE"
	InvoiceCancelled InvoiceStatus = "CANCELLED"
)

// ListingStatus is the lifecycle status of a marketplace listing.
type ListingStatus string

const (
	ListingActive   ListingStatus = "ACTIVE"
	ListingReserved ListingStatus = "RESERVED"
	ListingSold     ListingStatus = "SOLD"
	ListingExpired  ListingStatus = "EXPIRED"
)

// QCStatus is the state of a quality-control inspection request.
type QCStatus string

const (
	QCRequested       QCStatus = "REQUESTED"
	QCAwaitingPayment QCStatus = "AWAITING_PAYMENT"
	QCPaid            QCStatus = "PAID"
	QCInProgress      QCStatus = "IN_PROGRESS"
	QCCompleted       QCStatus = "COMPLETED"
)

func (s OrderStatus) Badge() Badge        { return Describe(KindOrder, string(s)) }
func (s PackageStatus) Badge() Badge      { return Describe(KindPackage, string(s)) }
func (s BatchStatus) Badge() Badge        { return Describe(KindBatch, string(s)) }
func (s ReturnStatus) Badge() Badge       { return Describe(KindReturn, string(s)) }
func (s VerificationStatus) Badge() Badge { return Describe(KindVerification, string(s)) }
func (s InvoiceStatus) Badge() Badge      { return Describe(KindInvoice, string(s)) }
func (s ListingStatus) Badge() Badge      { return Describe(KindListing, string(s)) }
func (s QCStatus) Badge() Badge           { return Describe(KindQC, string(s)) }

func (s OrderStatus) Known() bool        { return s.Badge().Known }
func (s PackageStatus) Known() bool      { return StageIndex(s) >= 0 }
func (s BatchStatus) Known() bool        { return s.Badge().Known }
func (s ReturnStatus) Known() bool       { return s.Badge().Known }
func (s VerificationStatus) Known() bool { return s.Badge().Known }
func (s InvoiceStatus) Known() bool      { return s.Badge().Known }
func (s ListingStatus) Known() bool      { return s.Badge().Known }
func (s QCStatus) Known() bool           { return s.Badge().Known }
