package dingtalk

import "github.com/sirupsen/logrus"

type SubDepartment struct {
	DeptID   int64  `json:"dept_id"`
	Name     string `json:"name"`
	ParentID int64  `json:"parent_id"`
}

type subDepartmentListResponse struct {
	BaseResponse
	Result []SubDepartment `json:"result"`
}

// GetSubDepartments mengambil daftar sub-departemen langsung dari parent.
// POST /topapi/v2/department/listsub
func (c *Client) GetSubDepartments(deptID int64) ([]SubDepartment, error) {
	var resp subDepartmentListResponse
	err := c.Post("/topapi/v2/department/listsub", map[string]interface{}{
		"dept_id":  deptID,
		"language": "zh_CN",
	}, &resp)
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"dept_id": deptID,
		"count":   len(resp.Result),
	}).Debug("Fetch sub-departemen selesai")
	return resp.Result, nil
}

type subDepartmentIDResponse struct {
	BaseResponse
	Result struct {
		DeptIDList []int64 `json:"dept_id_list"`
	} `json:"result"`
}

// GetSubDepartmentIDs mengambil daftar ID sub-departemen saja.
// POST /topapi/v2/department/listsubid
func (c *Client) GetSubDepartmentIDs(deptID int64) ([]int64, error) {
	var resp subDepartmentIDResponse
	err := c.Post("/topapi/v2/department/listsubid", map[string]interface{}{
		"dept_id": deptID,
	}, &resp)
	if err != nil {
		return nil, err
	}
	return resp.Result.DeptIDList, nil
}
