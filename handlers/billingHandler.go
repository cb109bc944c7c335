package handlers

import (
	"ClinicBook/models"
	"ClinicBook/services"

	"github.com/gin-gonic/gin"
)

type BillingHandler struct {
	service *services.BillingService
}

func NewBillingHandler(service *services.BillingService) *BillingHandler {
	return &BillingHandler{service: service}
}

func (h *BillingHandler) CreateInvoice(c *gin.Context) {
	var invoice models.Invoice
	if err := c.ShouldBindJSON(&invoice); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	if err := h.service.CreateInvoice(c, &invoice); err != nil {
		writeStoreError(c, err)
		return
	}
	c.JSON(201, invoice)
}

func (h *BillingHandler) GetInvoiceByID(c *gin.Context) {
	invoice, err := h.service.GetInvoice(c, c.Param("invoice_id"))
	if err != nil {
		writeStoreError(c, err)
		return
	}
	c.JSON(200, invoice)
}

func (h *BillingHandler) GetAppointmentInvoice(c *gin.Context) {
	invoice, err := h.service.GetInvoiceByAppointment(c, c.Param("appointment_id"))
	if err != nil {
		writeStoreError(c, err)
		return
	}
	c.JSON(200, invoice)
}

func (h *BillingHandler) UpdateInvoice(c *gin.Context) {
	var invoice models.Invoice
	if err := c.ShouldBindJSON(&invoice); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	invoice.ID = c.Param("invoice_id")

	if err := h.service.UpdateInvoice(c, &invoice); err != nil {
		writeStoreError(c, err)
		return
	}
	c.JSON(200, invoice)
}

func (h *BillingHandler) DeleteInvoice(c *gin.Context) {
	if err := h.service.DeleteInvoice(c, c.Param("invoice_id")); err != nil {
		writeStoreError(c, err)
		return
	}
	c.JSON(204, gin.H{"message": "Invoice deleted"})
}

func (h *BillingHandler) RecordPayment(c *gin.Context) {
	var payment models.Payment
	if err := c.ShouldBindJSON(&payment); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	payment.InvoiceID = c.Param("invoice_id")

	if err := h.service.RecordPayment(c, &payment); err != nil {
		writeStoreError(c, err)
		return
	}
	c.JSON(201, payment)
}

func (h *BillingHandler) ListPayments(c *gin.Context) {
	payments, err := h.service.ListPayments(c, c.Param("invoice_id"))
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, payments)
}
