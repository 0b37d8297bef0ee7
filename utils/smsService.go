package utils

import (
	"fmt"
	"log"

	"institute/config"

	"github.com/go-resty/resty/v2"
)

// SendSMS delivers a text message through the bulk SMS gateway.
func SendSMS(mobile, message string) error {
	if config.AppConfig.SmsApiKey == "" {
		log.Printf("SMS gateway not configured, skipping SMS to %s", mobile)
		return nil
	}

	client := resty.New()
	resp, err := client.R().
		SetHeader("authorization", config.AppConfig.SmsApiKey).
		SetFormData(map[string]string{
			"route":     "q",
			"sender_id": config.AppConfig.SmsSenderId,
			"message":   message,
			"numbers":   mobile,
		}).
		Post(config.AppConfig.SmsApiUrl)
	if err != nil {
		log.Printf("Error while sending SMS: %v", err)
		return err
	}

	if resp.StatusCode() != 200 {
		log.Printf("Failed to send SMS, response code: %d", resp.StatusCode())
		return fmt.Errorf("failed to send SMS, code: %d", resp.StatusCode())
	}
	return nil
}

// SendFeeReminderSMS notifies a student about an unpaid monthly fee.
func SendFeeReminderSMS(mobile, instituteName, month string, amount uint) error {
	message := fmt.Sprintf("Reminder: your fee of %d at %s for %s is pending.", amount, instituteName, month)
	return SendSMS(mobile, message)
}
