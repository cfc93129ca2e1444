package dingtalk

import (
	"strings"

	"github.com/sirupsen/logrus"
)

type LeaveStatus struct {
	UserID          string `json:"userid"`
	StartTime       int64  `json:"start_time"`
	EndTime         int64  `json:"end_time"`
	DurationPercent int    `json:"duration_percent"`
	DurationUnit    string `json:"duration_unit"`
}

type leaveStatusResponse struct {
	BaseResponse
	Result struct {
		HasMore     bool          `json:"has_more"`
		LeaveStatus []LeaveStatus `json:"leave_status"`
	} `json:"result"`
}

// GetLeaveStatus query status cuti untuk satu batch user dalam rentang waktu.
// Pagination offset diikuti sampai has_more = false.
// Batasan vendor: max 100 userid per panggilan, rentang max 180 hari.
// Pembagian batch dan rentang adalah tanggung jawab pemanggil.
// POST /topapi/attendance/getleavestatus
func (c *Client) GetLeaveStatus(userIDs []string, startTime, endTime int64) ([]LeaveStatus, error) {
	if len(userIDs) > 100 {
		userIDs = userIDs[:100]
	}
	userIDStr := strings.Join(userIDs, ",")

	var records []LeaveStatus
	offset := 0
	size := 20

	for {
		var resp leaveStatusResponse
		err := c.Post("/topapi/attendance/getleavestatus", map[string]interface{}{
			"userid_list": userIDStr,
			"start_time":  startTime,
			"end_time":    endTime,
			"offset":      offset,
			"size":        size,
		}, &resp)
		if err != nil {
			return nil, err
		}

		records = append(records, resp.Result.LeaveStatus...)
		if !resp.Result.HasMore {
			break
		}
		offset += size
	}

	logrus.WithFields(logrus.Fields{
		"users": len(userIDs),
		"count": len(records),
	}).Debug("Fetch leave status selesai")
	return records, nil
}

type VacationRecord struct {
	UserID           string  `json:"userid"`
	LeaveCode        string  `json:"leave_code"`
	StartTime        int64   `json:"start_time"`
	EndTime          int64   `json:"end_time"`
	RecordNumPerDay  *int    `json:"record_num_per_day"`
	RecordNumPerHour *int    `json:"record_num_per_hour"`
	LeaveViewUnit    string  `json:"leave_view_unit"`
	LeaveStatus      string  `json:"leave_status"`
	CalType          *string `json:"cal_type"`
}

type vacationRecordListResponse struct {
	BaseResponse
	Result struct {
		HasMore      bool             `json:"has_more"`
		LeaveRecords []VacationRecord `json:"leave_records"`
	} `json:"result"`
}

// GetVacationRecordList query record konsumsi cuti per leave_code untuk batch user.
// Hanya record dengan leave_status=success dan cal_type null yang dikembalikan;
// cal_type non-null adalah baris pembukuan saldo, bukan cuti betulan.
// POST /topapi/attendance/vacation/record/list
func (c *Client) GetVacationRecordList(opUserID, leaveCode string, userIDs []string) ([]VacationRecord, error) {
	userIDStr := strings.Join(userIDs, ",")

	var records []VacationRecord
	offset := 0
	size := 50

	for {
		var resp vacationRecordListResponse
		err := c.Post("/topapi/attendance/vacation/record/list", map[string]interface{}{
			"op_userid":  opUserID,
			"leave_code": leaveCode,
			"userids":    userIDStr,
			"offset":     offset,
			"size":       size,
		}, &resp)
		if err != nil {
			return nil, err
		}

		for _, rec := range resp.Result.LeaveRecords {
			if rec.LeaveStatus != "success" {
				continue
			}
			if rec.CalType != nil {
				continue
			}
			records = append(records, rec)
		}

		if !resp.Result.HasMore {
			break
		}
		offset += size
	}

	logrus.WithFields(logrus.Fields{
		"leave_code": leaveCode,
		"users":      len(userIDs),
		"count":      len(records),
	}).Debug("Fetch vacation record selesai")
	return records, nil
}

type VacationType struct {
	LeaveCode     string `json:"leave_code"`
	LeaveName     string `json:"leave_name"`
	LeaveViewUnit string `json:"leave_view_unit"`
	HoursInPerDay int    `json:"hours_in_per_day"`
	BizType       string `json:"biz_type"`
}

type vacationTypeListResponse struct {
	BaseResponse
	Result []VacationType `json:"result"`
}

// GetVacationTypeList mengambil katalog jenis cuti.
// Butuh op_userid yang diterima vendor sebagai caller-of-record.
// POST /topapi/attendance/vacation/type/list
func (c *Client) GetVacationTypeList(opUserID string) ([]VacationType, error) {
	var resp vacationTypeListResponse
	err := c.Post("/topapi/attendance/vacation/type/list", map[string]interface{}{
		"op_userid":       opUserID,
		"vacation_source": "all",
	}, &resp)
	if err != nil {
		return nil, err
	}

	types := resp.Result
	for i := range types {
		if types[i].HoursInPerDay == 0 {
			types[i].HoursInPerDay = 800
		}
	}
	return types, nil
}
