package domain

import (
	"net/url"

	statusdomain "cargo-portal/internal/features/status/domain"
)

func label(mn, en string) statusdomain.LocalizedString {
	return statusdomain.LocalizedString{MN: mn, EN: en}
}

func widget(key, path, status string, l statusdomain.LocalizedString, link string) Widget {
	q := url.Values{}
	if status != "" {
		q.Set("status", status)
	}
	return Widget{Key: key, Label: l, Path: path, Query: q, Link: link}
}

func customerView() View {
	return View{
		Name:  ViewCustomer,
		Title: label("Миний захиалгууд", "My shipments"),
		Widgets: []Widget{
			widget("orders_pending", "/orders", string(statusdomain.OrderPending), label("Хүлээгдэж буй", "Pending"), "/orders?status=PENDING"),
			widget("orders_in_transit", "/orders", string(statusdomain.OrderInTransit), label("Замд яваа", "In transit"), "/orders?status=IN_TRANSIT"),
			widget("orders_ready", "/orders", string(statusdomain.OrderReadyForPickup), label("Авахад бэлэн", "Ready for pickup"), "/orders?status=READY_FOR_PICKUP"),
			widget("invoices_issued", "/invoices", string(statusdomain.InvoiceIssued), label("Төлөх нэхэмжлэх", "Invoices to pay"), "/invoices?status=ISSUED"),
		},
		Actions: []string{"create_order", "create_return"},
	}
}

func cargoAdminView() View {
	return View{
		Name:  ViewCargoAdmin,
		Title: label("Карго удирдлага", "Cargo administration"),
		Widgets: []Widget{
			widget("orders_pending", "/orders", string(statusdomain.OrderPending), label("Шинэ захиалга", "New orders"), "/admin/orders?status=PENDING"),
			widget("batches_open", "/batches", string(statusdomain.BatchOpen), label("Нээлттэй ачаа", "Open batches"), "/admin/batches?status=OPEN"),
			widget("returns_opened", "/returns", string(statusdomain.ReturnOpened), label("Буцаалтын хүсэлт", "Return requests"), "/admin/returns?status=OPENED"),
			widget("verifications_pending", "/verification", string(statusdomain.VerificationPending), label("Баталгаажуулалт", "Verifications"), "/admin/verifications?status=PENDING"),
		},
		Actions: []string{"create_batch"},
	}
}

func superAdminView() View {
	return View{
		Name:  ViewSuperAdmin,
		Title: label("Системийн удирдлага", "System administration"),
		Widgets: []Widget{
			widget("users", "/users", "", label("Хэрэглэгчид", "Users"), "/admin/users"),
			widget("companies", "/companies", "", label("Компаниуд", "Companies"), "/admin/companies"),
			widget("verifications_pending", "/verification", string(statusdomain.VerificationPending), label("Баталгаажуулалт", "Verifications"), "/admin/verifications?status=PENDING"),
			widget("invoices_overdue", "/invoices", string(statusdomain.InvoiceOverdue), label("Хугацаа хэтэрсэн", "Overdue invoices"), "/admin/invoices?status=OVERDUE"),
		},
		Actions: []string{"manage_settings"},
	}
}

func staffChinaView() View {
	return View{
		Name:  ViewStaffChina,
		Title: label("Эрээн агуулах", "China warehouse"),
		Widgets: []Widget{
			widget("packages_received", "/packages", string(statusdomain.PackageReceivedInChina), label("Хэмжих", "To measure"), "/staff/packages?status=RECEIVED_IN_CHINA"),
			widget("packages_shelved", "/packages", string(statusdomain.PackageShelvedChina), label("Тавиур дээр", "On shelf"), "/staff/packages?status=SHELVED_CHINA"),
			widget("batches_open", "/batches", string(statusdomain.BatchOpen), label("Нээлттэй ачаа", "Open batches"), "/staff/batches?status=OPEN"),
		},
		Actions: []string{"scan_package", "create_batch"},
	}
}

func staffMongoliaView() View {
	return View{
		Name:  ViewStaffMongolia,
		Title: label("Улаанбаатар агуулах", "Mongolia warehouse"),
		Widgets: []Widget{
			widget("batches_departed", "/batches", string(statusdomain.BatchDeparted), label("Ирж буй ачаа", "Incoming batches"), "/staff/batches?status=DEPARTED"),
			widget("packages_arrived", "/packages", string(statusdomain.PackageArrivedMN), label("Ирсэн ачаа", "Arrived"), "/staff/packages?status=ARRIVED_MN"),
			widget("packages_ready", "/packages", string(statusdomain.PackageReadyForPickup), label("Олгоход бэлэн", "Ready for pickup"), "/staff/packages?status=READY_FOR_PICKUP"),
		},
		Actions: []string{"scan_package"},
	}
}

func driverView() View {
	return View{
		Name:  ViewDriver,
		Title: label("Жолооч", "Driver"),
		Widgets: []Widget{
			widget("batches_closed", "/batches", string(statusdomain.BatchClosed), label("Ачихад бэлэн", "Ready to load"), "/driver/batches?status=CLOSED"),
			widget("batches_departed", "/batches", string(statusdomain.BatchDeparted), label("Замд", "On the road"), "/driver/batches?status=DEPARTED"),
		},
		Actions: []string{"register_vehicle"},
	}
}

func transportAdminView() View {
	return View{
		Name:  ViewTransportAdmin,
		Title: label("Тээврийн компани", "Transport company"),
		Widgets: []Widget{
			widget("vehicles", "/vehicles", "", label("Тээврийн хэрэгсэл", "Vehicles"), "/transport/vehicles"),
			widget("batches_departed", "/batches", string(statusdomain.BatchDeparted), label("Замд яваа ачаа", "Batches on the road"), "/transport/batches?status=DEPARTED"),
			widget("marketplace_active", "/marketplace", string(statusdomain.ListingActive), label("Зарууд", "Listings"), "/marketplace?status=ACTIVE"),
		},
		Actions: []string{"register_vehicle", "create_listing"},
	}
}

func transportStaffView() View {
	return View{
		Name:  ViewTransportStaff,
		Title: label("Тээврийн ажилтан", "Transport staff"),
		Widgets: []Widget{
			widget("batches_closed", "/batches", string(statusdomain.BatchClosed), label("Ачихад бэлэн", "Ready to load"), "/transport/batches?status=CLOSED"),
			widget("marketplace_active", "/marketplace", string(statusdomain.ListingActive), label("Зарууд", "Listings"), "/marketplace?status=ACTIVE"),
		},
		Actions: []string{},
	}
}
