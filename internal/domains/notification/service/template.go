package service

import (
	"fmt"
	"html"

	bookingModel "paradasia/internal/domains/booking/model"
	inquiryModel "paradasia/internal/domains/inquiry/model"
	"paradasia/shared/constant"
)

func confirmationHTML(booking bookingModel.Booking) string {
	return fmt.Sprintf(`<h2>Your booking is confirmed!</h2>
<p>Dear %s,</p>
<p>Thank you for choosing Paradasia Hideway. Your reservation details:</p>
<ul>
  <li><strong>Room:</strong> %s</li>
  <li><strong>Check-in:</strong> %s</li>
  <li><strong>Check-out:</strong> %s</li>
  <li><strong>Guests:</strong> %d</li>
  <li><strong>Total:</strong> GHS %d</li>
  <li><strong>Reference:</strong> %s</li>
</ul>
<p>We look forward to welcoming you.</p>`,
		html.EscapeString(booking.GuestName()),
		html.EscapeString(booking.RoomType),
		booking.CheckIn.Format(constant.DateOnlyFormat),
		booking.CheckOut.Format(constant.DateOnlyFormat),
		booking.Guests,
		booking.TotalAmountMinor/constant.MinorUnitsPerCur,
		html.EscapeString(booking.PaymentReference),
	)
}

func cancellationHTML(booking bookingModel.Booking, refundOwed bool) string {
	refundNote := ""
	if refundOwed {
		refundNote = "<p>Your payment will be refunded. Our team will reach out with the details.</p>"
	}

	return fmt.Sprintf(`<h2>Your booking has been cancelled</h2>
<p>Dear %s,</p>
<p>Your reservation for the %s room from %s to %s has been cancelled.</p>
%s
<p>We hope to host you another time.</p>`,
		html.EscapeString(booking.GuestName()),
		html.EscapeString(booking.RoomType),
		booking.CheckIn.Format(constant.DateOnlyFormat),
		booking.CheckOut.Format(constant.DateOnlyFormat),
		refundNote,
	)
}

func inquiryHTML(inquiry inquiryModel.GuestInquiry) string {
	return fmt.Sprintf(`<h2>New guest inquiry</h2>
<p><strong>From:</strong> %s %s (%s)</p>
<p><strong>Subject:</strong> %s</p>
<p>%s</p>`,
		html.EscapeString(inquiry.FirstName),
		html.EscapeString(inquiry.LastName),
		html.EscapeString(inquiry.Email),
		html.EscapeString(inquiry.Subject),
		html.EscapeString(inquiry.Message),
	)
}
