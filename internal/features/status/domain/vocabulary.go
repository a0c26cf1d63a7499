package domain

type entry struct {
	label LocalizedString
	color Color
}

func e(mn, en string, c Color) entry {
	return entry{label: LocalizedString{MN: mn, EN: en}, color: c}
}

// packageEntries is shared by orders, whose statuses are a subset of the package lifecycle.
var packageEntries = map[string]entry{
	string(PackagePending):         e("Хүлээгдэж буй", "Pending", ColorNeutral),
	string(PackagePreAnnounced):    e("Урьдчилан мэдэгдсэн", "Pre-announced", ColorInfo),
	string(PackageReceivedInChina): e("Хятадад хүлээн авсан", "Received in China", ColorInfo),
	string(PackageMeasured):        e("Хэмжсэн", "Measured", ColorInfo),
	string(PackageCategorized):     e("Ангилсан", "Categorized", ColorInfo),
	string(PackageShelvedChina):    e("Хятадын агуулахад", "Shelved in China", ColorInfo),
	string(PackageBatched):         e("Ачаанд орсон", "Batched", ColorProcessing),
	string(PackageDeparted):        e("Хөдөлсөн", "Departed", ColorProcessing),
	string(PackageInTransit):       e("Замд яваа", "In transit", ColorProcessing),
	string(PackageAtCustoms):       e("Гаальд", "At customs", ColorWarning),
	string(PackageCustomsCleared):  e("Гаалиар гарсан", "Customs cleared", ColorProcessing),
	string(PackageArrivedMN):       e("Монголд ирсэн", "Arrived in Mongolia", ColorProcessing),
	string(PackageShelvedMN):       e("Монголын агуулахад", "Shelved in Mongolia", ColorProcessing),
	string(PackageReadyForPickup):  e("Авахад бэлэн", "Ready for pickup", ColorSuccess),
	string(PackageDelivered):       e("Хүргэгдсэн", "Delivered", ColorSuccess),
}

var vocabulary = map[Kind]map[string]entry{
	KindPackage: packageEntries,
	KindOrder: {
		string(OrderPending):         packageEntries[string(PackagePending)],
		string(OrderPreAnnounced):    packageEntries[string(PackagePreAnnounced)],
		string(OrderReceivedInChina): packageEntries[string(PackageReceivedInChina)],
		string(OrderInTransit):       packageEntries[string(PackageInTransit)],
		string(OrderArrivedMN):       packageEntries[string(PackageArrivedMN)],
		string(OrderReadyForPickup):  packageEntries[string(PackageReadyForPickup)],
		string(OrderDelivered):       packageEntries[string(PackageDelivered)],
		string(OrderCancelled):       e("Цуцлагдсан", "Cancelled", ColorDanger),
	},
	KindBatch: {
		string(BatchOpen):     e("Нээлттэй", "Open", ColorInfo),
		string(BatchClosed):   e("Хаагдсан", "Closed", ColorWarning),
		string(BatchDeparted): e("Хөдөлсөн", "Departed", ColorProcessing),
		string(BatchArrived):  e("Ирсэн", "Arrived", ColorSuccess),
		string(BatchUnloaded): e("Буулгасан", "Unloaded", ColorSuccess),
	},
	KindReturn: {
		string(ReturnOpened):      e("Нээгдсэн", "Opened", ColorInfo),
		string(ReturnUnderReview): e("Хянагдаж буй", "Under review", ColorProcessing),
		string(ReturnApproved):    e("Зөвшөөрсөн", "Approved", ColorSuccess),
		string(ReturnRejected):    e("Татгалзсан", "Rejected", ColorDanger),
		string(ReturnResolved):    e("Шийдвэрлэсэн", "Resolved", ColorNeutral),
	},
	KindVerification: {
		string(VerificationNotSubmitted): e("Илгээгээгүй", "Not submitted", ColorNeutral),
		string(VerificationPending):      e("Хүлээгдэж буй", "Pending", ColorWarning),
		string(VerificationApproved):     e("Баталгаажсан", "Approved", ColorSuccess),
		string(VerificationRejected):     e("Татгалзсан", "Rejected", ColorDanger),
	},
	KindInvoice: {
		string(InvoiceDraft):     e("Ноорог", "Draft", ColorNeutral),
		string(InvoiceIssued):    e("Илгээсэн", "Issued", ColorInfo),
		string(InvoicePaid):      e("Төлөгдсөн", "Paid", ColorSuccess),
		string(InvoiceOverdue):   e("Хугацаа хэтэрсэн", "Overdue", ColorDanger),
		string(InvoiceCancelled): e("Цуцлагдсан", "Cancelled", ColorNeutral),
	},
	KindListing: {
		string(ListingActive):   e("Идэвхтэй", "Active", ColorSuccess),
		string(ListingReserved): e("Захиалагдсан", "Reserved", ColorWarning),
		string(ListingSold):     e("Зарагдсан", "Sold", ColorNeutral),
		string(ListingExpired):  e("Хугацаа дууссан", "Expired", ColorNeutral),
	},
	KindQC: {
		string(QCRequested):       e("Хүсэлт илгээсэн", "Requested", ColorInfo),
		string(QCAwaitingPayment): e("Төлбөр хүлээгдэж буй", "Awaiting payment", ColorWarning),
		string(QCPaid):            e("Төлөгдсөн", "Paid", ColorProcessing),
		string(QCInProgress):      e("Шалгаж буй", "In progress", ColorProcessing),
		string(QCCompleted):       e("Шалгасан", "Completed", ColorSuccess),
	},
}

// Describe maps a status string of the given kind to its badge. Values that
// are not in the table, including values of an unknown kind, produce a
// neutral badge that shows raw verbatim.
func Describe(kind Kind, raw string) Badge {
	if ent, ok := vocabulary[kind][raw]; ok {
		return Badge{Raw: raw, Label: ent.label, Color: ent.color, Known: true}
	}
	return Badge{
		Raw:   raw,
		Label: LocalizedString{MN: raw, EN: raw},
		Color: ColorNeutral,
	}
}

// Values returns the known status strings of a kind, for filter dropdowns.
// Package values come back in lifecycle order.
func Values(kind Kind) []string {
	if kind == KindPackage {
		out := make([]string, len(Stages))
		for i, s := range Stages {
			out[i] = string(s)
		}
		return out
	}

	table := vocabulary[kind]
	out := make([]string, 0, len(table))
	for _, s := range orderedKeys[kind] {
		if _, ok := table[s]; ok {
			out = append(out, s)
		}
	}
	return out
}

var orderedKeys = map[Kind][]string{
	KindOrder: {
		string(OrderPending), string(OrderPreAnnounced), string(OrderReceivedInChina), string(OrderInTransit),
		string(OrderArrivedMN), string(OrderReadyForPickup), string(OrderDelivered), string(OrderCancelled),
	},
	KindBatch:  {string(BatchOpen), string(BatchClosed), string(BatchDeparted), string(BatchArrived), string(BatchUnloaded)},
	KindReturn: {string(ReturnOpened), string(ReturnUnderReview), string(ReturnApproved), string(ReturnRejected), string(ReturnResolved)},
	KindVerification: {
		string(VerificationNotSubmitted), string(VerificationPending), string(VerificationApproved), string(VerificationRejected),
	},
	KindInvoice: {string(InvoiceDraft), string(InvoiceIssued), string(InvoicePaid), string(InvoiceOverdue), string(InvoiceCancelled)},
	KindListing: {string(ListingActive), string(ListingReserved), string(ListingSold), string(ListingExpired)},
	KindQC:      {string(QCRequested), string(QCAwaitingPayment), string(QCPaid), string(QCInProgress), string(QCCompleted)},
}
